package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/life-track-api/internal/models"
	"gorm.io/gorm"
)

// SeedCatalog inserts the track catalog if no tracks exist yet. The
// emptiness check runs inside the same transaction as the inserts, and
// the unique index on tracks.level makes a racing second seed fail
// instead of duplicating the catalog. Runs at startup, before the
// server starts accepting requests.
func SeedCatalog() error {
	return seedCatalog(DB)
}

func seedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Track{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check catalog: %w", err)
		}
		if count > 0 {
			return nil
		}

		log.Println("Seeding track catalog...")
		for _, track := range defaultCatalog() {
			if err := tx.Create(&track).Error; err != nil {
				return fmt.Errorf("failed to seed track level %d: %w", track.Level, err)
			}
		}
		log.Println("Track catalog seeded")
		return nil
	})
}

// defaultCatalog returns the fixed four-level catalog. Content is
// configuration data, not business logic.
func defaultCatalog() []models.Track {
	return []models.Track{
		{
			Level:       1,
			Title:       "O Arquiteto da Base",
			Description: "Saia do modo automático e retome as rédeas.",
			Objective:   "Retomar as rédeas da biologia e do tempo.",
			Pillars: []models.TrackPillar{
				{Category: "Exercício", Description: "30 min de caminhada ou treino leve", Tasks: []models.DailyTask{
					{Title: "Caminhada 30min", FrequencyPerWeek: 3, IsHabit: true},
				}},
				{Category: "Alimentação", Description: "Regra 80/20", Tasks: []models.DailyTask{
					{Title: "Aplicar regra 80/20", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Sono", Description: "Dormir 7h-8h", Tasks: []models.DailyTask{
					{Title: "Dormir 7h-8h (Horário fixo)", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Finanças", Description: "Mapear gastos", Tasks: []models.DailyTask{
					{Title: "Mapear gastos e evitar juros", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Mente", Description: "Mindfulness", Tasks: []models.DailyTask{
					{Title: "5 min Mindfulness ao acordar", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Intelecto", Description: "Ler 1 capítulo", Tasks: []models.DailyTask{
					{Title: "Ler 1 capítulo do livro do mês", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Relacionamentos", Description: "Tempo de qualidade", Tasks: []models.DailyTask{
					{Title: "Tempo de qualidade sem telas", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Legado", Description: "Reflexão", Tasks: []models.DailyTask{
					{Title: "Reflexão: Identificar uma causa", FrequencyPerWeek: 1, IsHabit: false},
				}},
			},
		},
		{
			Level:       2,
			Title:       "O Atleta da Performance",
			Description: "Ganhar tração e clareza mental.",
			Objective:   "Força e clareza mental superior.",
			Pillars: []models.TrackPillar{
				{Category: "Exercício", Description: "Treino de Força", Tasks: []models.DailyTask{
					{Title: "Treino de Força (Musculação/Calistenia)", FrequencyPerWeek: 4, IsHabit: true},
				}},
				{Category: "Alimentação", Description: "Zero ultraprocessados", Tasks: []models.DailyTask{
					{Title: "Zero ultraprocessados + Jejum 12h", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Sono", Description: "Higiene do sono rigorosa", Tasks: []models.DailyTask{
					{Title: "Higiene do sono (Zero telas 1h antes)", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Finanças", Description: "Aporte na Reserva", Tasks: []models.DailyTask{
					{Title: "Aporte na Reserva de Emergência", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Mente", Description: "Meditação + Journaling", Tasks: []models.DailyTask{
					{Title: "20 min Meditação + Journaling", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Intelecto", Description: "Hard Skill", Tasks: []models.DailyTask{
					{Title: "Estudo de nova língua/Hard Skill", FrequencyPerWeek: 3, IsHabit: true},
				}},
				{Category: "Relacionamentos", Description: "Networking", Tasks: []models.DailyTask{
					{Title: "Networking: Conectar com alguém", FrequencyPerWeek: 1, IsHabit: true},
				}},
			},
		},
		{
			Level:       3,
			Title:       "O Mestre do Equilíbrio",
			Description: "Impactar o ambiente e atingir Flow.",
			Objective:   "Atingir o estado de Flow.",
			Pillars: []models.TrackPillar{
				{Category: "Exercício", Description: "HIIT + Mobilidade", Tasks: []models.DailyTask{
					{Title: "Treino HIIT + Mobilidade/Yoga", FrequencyPerWeek: 5, IsHabit: true},
				}},
				{Category: "Alimentação", Description: "Nutrição Funcional", Tasks: []models.DailyTask{
					{Title: "Nutrição Funcional Personalizada", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Sono", Description: "Dados de sono", Tasks: []models.DailyTask{
					{Title: "Análise de dados de sono profundo/REM", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Finanças", Description: "Diversificação", Tasks: []models.DailyTask{
					{Title: "Diversificação Internacional", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Mente", Description: "Filosofia", Tasks: []models.DailyTask{
					{Title: "Estudo filosófico / Controle emocional", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Intelecto", Description: "Escrita/Síntese", Tasks: []models.DailyTask{
					{Title: "Escrita/Síntese (Blog ou Mentoria)", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Relacionamentos", Description: "Mentorar", Tasks: []models.DailyTask{
					{Title: "Mentorar alguém mais jovem", FrequencyPerWeek: 1, IsHabit: true},
				}},
			},
		},
		{
			Level:       4,
			Title:       "O Ícone da Transcendência",
			Description: "Longevidade e Liberdade Total.",
			Objective:   "Imortalidade Simbólica.",
			Pillars: []models.TrackPillar{
				{Category: "Exercício", Description: "Longevidade", Tasks: []models.DailyTask{
					{Title: "Treino de Longevidade Funcional", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Alimentação", Description: "Orgânica", Tasks: []models.DailyTask{
					{Title: "Dieta Orgânica/Produção Própria", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Sono", Description: "Maestria Circadiana", Tasks: []models.DailyTask{
					{Title: "Maestria Circadiana", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Finanças", Description: "Gestão Patrimônio", Tasks: []models.DailyTask{
					{Title: "Gestão e Distribuição de Patrimônio", FrequencyPerWeek: 1, IsHabit: true},
				}},
				{Category: "Mente", Description: "Presença", Tasks: []models.DailyTask{
					{Title: "Estado de Presença Constante", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Intelecto", Description: "Legado", Tasks: []models.DailyTask{
					{Title: "Trabalho no Legado (Livro/Fundação)", FrequencyPerWeek: 7, IsHabit: true},
				}},
				{Category: "Relacionamentos", Description: "Comunidade", Tasks: []models.DailyTask{
					{Title: "Construção de Comunidade/Clã", FrequencyPerWeek: 1, IsHabit: true},
				}},
			},
		},
	}
}
