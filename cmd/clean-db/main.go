// Command-line tool to clean the database by dropping all tables in the public schema.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"devagent-backend/internal/database"
)

const dropAllTables = `
DO $$
	DECLARE
		r RECORD;
	BEGIN
		FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public') LOOP
			EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
		END LOOP;
	END $$;
`

func main() {
	yes := flag.Bool("yes", false, "skip confirmation prompt")
	migrate := flag.Bool("migrate", false, "recreate tables after dropping them")
	flag.Parse()

	if !*yes {
		fmt.Println("WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.")
		fmt.Print("This action is irreversible. Do you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input")
		}
		if strings.TrimSpace(strings.ToLower(input)) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Database failed to initialize")
	}

	if err := db.Exec(dropAllTables).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to execute drop command")
	}
	fmt.Println("All tables dropped successfully.")

	if *migrate {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate")
		}
		fmt.Println("Tables recreated.")
	}
}
