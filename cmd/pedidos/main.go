package main

import (
	"github.com/viviapp/pedidos/internal/backend"
	"github.com/viviapp/pedidos/internal/config"
	"github.com/viviapp/pedidos/internal/handlers"
	"github.com/viviapp/pedidos/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	orders := backend.NewOrderClient(conf.BackendAddress)
	paid := backend.NewPaymentClient(conf.BackendAddress)

	handlerSet := handlers.NewHandlerSet(orders, paid)

	r := router.NewRouter(conf.RunAddress, handlerSet)

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}

}
