package main

import "buildsafe/go_backend/internal/app"

func main() {
	app.Run()
}
