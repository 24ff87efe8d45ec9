package main

import (
	_ "mensalidade_pix/docs"
)

// @title           Mensalidade PIX API
// @version         1.0
// @description     PIX billing for monthly membership fees, backed by Mercado Pago and DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	Execute()
}
