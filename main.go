package main

import "github.com/lisapod/lisapod-api/cmd"

// @title           Lisapod API
// @version         1.0.0
// @description     A serialized podcast generation API: topic in, narrated episodes out
// @contact.name    API Support
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
