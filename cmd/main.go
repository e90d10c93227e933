package main

import "github.com/akovalev/go-task-tracker/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenSQLite()
	defer app.CloseSQLite()

	app.MustRunMenu()
}
