package main

// @title StockTrail API
// @version 1.0
// @description Inventory and stock request management API with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/stocktrail/stocktrail
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/stocktrail/stocktrail/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Inventory
// @tag.description Inventory item and stock ledger endpoints

// @tag.name Requests
// @tag.description Stock request lifecycle endpoints

// @tag.name Reports
// @tag.description Reporting and analytics endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
