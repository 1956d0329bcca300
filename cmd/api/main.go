package main

import (
	"log"

	_ "paypal_checkout/docs"
	"paypal_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PayPal Checkout API
// @version         1.0
// @description     Direct (credit card) and express (redirect) checkout backed by PayPal or Mercado Pago, with a DynamoDB transaction log.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("application stopped: %v", err)
	}
}
