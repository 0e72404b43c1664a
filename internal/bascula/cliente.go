package bascula

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"

	"github.com/go-resty/resty/v2"
)

// Cliente talks to the API as the scale station.
type Cliente struct {
	http *resty.Client
}

func NewCliente(baseURL string) *Cliente {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &Cliente{http: c}
}

// Login stores the access token for the following calls.
func (c *Cliente) Login(ctx context.Context, username, password string) error {
	var out dto.LoginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.LoginRequest{Username: username, Password: password}).
		SetResult(&out).
		SetError(&apierror.APIError{}).
		Post("/v1/auth/login")
	if err := respErr(resp, err); err != nil {
		return err
	}
	c.http.SetAuthToken(out.AccessToken)
	return nil
}

func (c *Cliente) Productos(ctx context.Context) ([]dto.ProductoResponse, error) {
	var out []dto.ProductoResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apierror.APIError{}).
		Get("/v1/productos")
	if err := respErr(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Cliente) CrearBoleta(ctx context.Context, req dto.CrearBoletaRequest) (*dto.BoletaResponse, error) {
	var out dto.BoletaResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apierror.APIError{}).
		Post("/v1/boletas")
	if err := respErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func respErr(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}
	if e, ok := resp.Error().(*apierror.APIError); ok && e.Detail != "" {
		return fmt.Errorf("api %d: %s", resp.StatusCode(), e.Detail)
	}
	return fmt.Errorf("api: %s", http.StatusText(resp.StatusCode()))
}
