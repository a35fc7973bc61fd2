package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll наполняет базу демонстрационными данными: сначала команды,
// затем оборудование, привязанное к ним.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демонстрационных данных...")

	teamIDs, err := seedTeams(ctx, db)
	if err != nil {
		log.Fatalf("❌ Ошибка наполнения команд: %v", err)
	}
	if err := seedEquipment(ctx, db, teamIDs); err != nil {
		log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
	}

	log.Println("✅ Наполнение демонстрационных данных завершено!")
}
