// cmd/bascula: estación de báscula: lee el peso y registra la boleta.
// Uso: bascula -producto POLLO_ENTERO -cliente 3 -pollos 40 -cajas 10
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/erickbalderas17/rastro-pollos/internal/bascula"
	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	codigo := flag.String("producto", model.CodigoPolloEntero, "codigo de producto")
	clienteID := flag.Uint("cliente", 0, "id del cliente (0 = OTRO)")
	tipo := flag.String("tipo", model.TipoVentaNormal, "normal | mayoreo | menudeo")
	pollos := flag.Int("pollos", 0, "numero de pollos")
	cajas := flag.Int("cajas", 0, "numero de cajas")
	comentarios := flag.String("comentarios", "", "comentarios")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := bascula.NewCliente(cfg.APIURL)
	if err := api.Login(ctx, cfg.BasculaUser, cfg.BasculaPass); err != nil {
		log.Fatal().Err(err).Msg("login")
	}

	productos, err := api.Productos(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("productos")
	}
	var productoID uint
	for _, p := range productos {
		if p.Codigo == *codigo {
			productoID = p.ID
		}
	}
	if productoID == 0 {
		log.Fatal().Str("codigo", *codigo).Msg("producto desconocido")
	}

	var lector bascula.Lector = bascula.NewManualLector(os.Stdin, os.Stdout)
	if cfg.BasculaPorSerial {
		lector = bascula.ConRespaldo{
			Primario: bascula.NewSerialLector(cfg.SerialPort, cfg.SerialBaudRate),
			Respaldo: lector,
		}
	}

	peso, err := lector.LeerPeso(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("lectura de peso")
	}

	req := dto.CrearBoletaRequest{
		ProductoID:  productoID,
		TipoVenta:   *tipo,
		NumPollos:   *pollos,
		NumCajas:    *cajas,
		PesoTotalKg: peso,
		Comentarios: *comentarios,
	}
	if *clienteID != 0 {
		id := uint(*clienteID)
		req.ClienteID = &id
	}

	b, err := api.CrearBoleta(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar boleta")
	}
	fmt.Printf("Boleta %d registrada: %s kg, %d cajas (%s)\n", b.ID, b.PesoTotalKg.StringFixed(3), b.NumCajas, b.Cliente)
}
