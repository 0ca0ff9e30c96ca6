package main

import (
	"log"
	"os"

	"github.com/KojotMaciek/activitiesmonitor/cmd/activities"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file may provide ACTIVITIES_DB; it is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("Error loading .env file: ", err)
	}
	activities.Execute()
}
