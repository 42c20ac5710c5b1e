package main

import "lawlink_backend/internal/app"

func main() {
	app.Run()
}
