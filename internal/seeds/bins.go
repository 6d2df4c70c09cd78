package seeds

import (
	"log"

	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/models"
)

func SeedBins() {
	log.Println("Seeding bin locations...")

	bins := []models.BinLocation{
		{
			Value:       "fpti-gedung-a-lt1",
			Label:       "Gedung A FPTI Lantai 1",
			Fakultas:    "FPTI",
			Bins:        []string{"Organik", "Anorganik", "Botol Plastik"},
			Description: "Dekat pintu masuk utama, sebelah tangga.",
		},
		{
			Value:       "fpti-kantin",
			Label:       "Kantin FPTI",
			Fakultas:    "FPTI",
			Bins:        []string{"Organik", "Residu"},
			Description: "Area kantin, di samping tempat cuci tangan.",
		},
		{
			Value:       "fpmipa-lab-kimia",
			Label:       "Laboratorium Kimia FPMIPA",
			Fakultas:    "FPMIPA",
			Bins:        []string{"B3", "Residu"},
			Description: "Khusus limbah laboratorium dan baterai bekas.",
		},
		{
			Value:       "fpmipa-lobby",
			Label:       "Lobby FPMIPA",
			Fakultas:    "FPMIPA",
			Bins:        []string{"Organik", "Anorganik", "Kertas"},
			Description: "Lobby utama dekat ruang baca.",
		},
		{
			Value:       "fpeb-gedung-utama",
			Label:       "Gedung Utama FPEB",
			Fakultas:    "FPEB",
			Bins:        []string{"Organik", "Anorganik", "Kertas", "Botol Plastik"},
			Description: "Koridor lantai dasar.",
		},
		{
			Value:       "fip-perpustakaan",
			Label:       "Perpustakaan FIP",
			Fakultas:    "FIP",
			Bins:        []string{"Kertas", "Anorganik"},
			Description: "Samping meja sirkulasi.",
		},
	}

	for _, b := range bins {
		var existing models.BinLocation
		if err := database.DB.Where("value = ?", b.Value).First(&existing).Error; err == nil {
			log.Printf("   Bin already exists: %s", b.Value)
			continue
		}

		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("   Failed to create bin %s: %v", b.Value, err)
		} else {
			log.Printf("   Bin created: %s (%s)", b.Label, b.Fakultas)
		}
	}
}
