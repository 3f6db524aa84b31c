package main

import "civicmatch_backend/internal/app"

func main() {
	app.Run()
}
