package database

import (
	"path/filepath"
	"testing"

	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
	"go.uber.org/zap"
)

func TestConnectMemory(t *testing.T) {
	db, err := Connect(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer Close(db)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if !db.Migrator().HasTable(&models.Group{}) {
		t.Error("Expected whatsapp_groups table to exist")
	}
}

func TestConnectFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkshare.db")

	db, err := Connect(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	group := models.Group{Name: "Persisted", Description: "d", Category: "other", Country: "Global", Link: "https://chat.whatsapp.com/x", Owner: "o", CreatedAt: 1}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if err := Close(db); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	db, err = Connect(path, nil)
	if err != nil {
		t.Fatalf("Failed to reopen: %v", err)
	}
	defer Close(db)

	var count int64
	db.Model(&models.Group{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 persisted group, got %d", count)
	}
}
