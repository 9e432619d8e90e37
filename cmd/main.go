// cmd/main.go
package main

import (
	"portfolio-api/app"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend API for a personal portfolio site.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
