package main

import (
	_ "repair_visits/docs"
	"repair_visits/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Repair Visits API
// @version         1.0
// @description     Visit query and aggregation engine for an appliance-repair service.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
