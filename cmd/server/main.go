package main

import "walletvault/internal/app"

func main() {
	app.Run()
}
