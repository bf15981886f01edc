package main

import (
	"bitbucket.org/airenas/devtasks/internal/app/seed"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	seed.Execute()
}

var version string

func printBanner() {
	banner := `
       __           __            __
  ____/ /__ _   __ / /_____ _____/ /_______
 / __  / _ \ | / // __/ __ ` + "`" + `/ ___/ //_/ ___/
/ /_/ /  __/ |/ // /_/ /_/ (__  ) ,< (__  )
\__,_/\___/|___/ \__/\__,_/____/_/|_/____/
  developer seeder  v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/airenas/devtasks"))
}
