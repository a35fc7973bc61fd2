package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedTeams создаёт команды и их участников. Существующие команды не трогаем.
func seedTeams(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	log.Println("  - Наполнение таблицы 'teams'...")

	teamIDs := make(map[string]uint64, len(teamsData))
	for _, team := range teamsData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", team.Name).Scan(&id)
		if err == nil {
			teamIDs[team.Name] = id
			log.Printf("  ⊙ Команда уже существует: %s", team.Name)
			continue
		}

		err = db.QueryRow(ctx,
			"INSERT INTO teams (name, color) VALUES ($1, $2) RETURNING id",
			team.Name, team.Color,
		).Scan(&id)
		if err != nil {
			return nil, err
		}

		for _, member := range team.Members {
			if _, err := db.Exec(ctx,
				"INSERT INTO team_members (team_id, member_name) VALUES ($1, $2)",
				id, member,
			); err != nil {
				return nil, err
			}
		}

		teamIDs[team.Name] = id
		log.Printf("  ✓ Создана команда: %s", team.Name)
	}
	return teamIDs, nil
}
