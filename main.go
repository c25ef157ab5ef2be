package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lcdc/selections-go/config"
	"github.com/lcdc/selections-go/db"
	"github.com/lcdc/selections-go/middleware"
	"github.com/lcdc/selections-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, db.DB)

	log.Printf("listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
