package main

import (
	"fmt"
	"os"

	"chef-catering/database"
	"chef-catering/database/seeders"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate  - Run schema migrations and seed defaults")
		fmt.Println("  go run tools/migrate.go seed     - Re-run the experience type seeder")
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		db, err := database.InitDB()
		if err != nil {
			fmt.Printf("❌ Could not connect: %v\n", err)
			os.Exit(1)
		}
		seeders.SeedExperienceTypes(db)
		fmt.Println("✅ Seeding completed!")

	default:
		fmt.Printf("Unknown command: %s\n", command)
	}
}
