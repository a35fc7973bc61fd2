package seeders

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedEquipment наполняет таблицу оборудования. Дубли по серийному
// номеру пропускаются, чтобы сидер можно было гонять повторно.
func seedEquipment(ctx context.Context, db *pgxpool.Pool, teamIDs map[string]uint64) error {
	log.Println("  - Наполнение таблицы 'equipment'...")

	query := `INSERT INTO equipment (name, serial_number, department, category, location,
			  assigned_to, team_id, purchase_date, warranty_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	created, skipped := 0, 0
	for _, e := range equipmentData {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipment WHERE serial_number = $1", e.SerialNumber).Scan(&existingID)
		if err == nil {
			skipped++
			log.Printf("  ⊙ Пропущено (уже есть): %s", e.Name)
			continue
		}

		teamID, ok := teamIDs[e.TeamName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Команда '%s' не найдена, пропускаем оборудование '%s'.", e.TeamName, e.Name)
			continue
		}

		// Покупка в последние три года, гарантия в ближайшие два.
		purchaseDate := time.Now().AddDate(0, 0, -rand.Intn(365*3))
		warrantyDate := time.Now().AddDate(0, 0, rand.Intn(365*2))

		if _, err := db.Exec(ctx, query,
			e.Name, e.SerialNumber, e.Department, e.Category, e.Location,
			e.AssignedTo, teamID, purchaseDate, warrantyDate,
		); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Name, err)
			return err
		}
		created++
		log.Printf("  ✓ Создано: %s", e.Name)
	}

	log.Printf("  Итого: создано %d, пропущено %d", created, skipped)
	return nil
}
