package pagination

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID   int
	Name string
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		in   PageRequest
		want PageRequest
	}{
		{PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{PageRequest{Page: 3, PageSize: 5}, PageRequest{Page: 3, PageSize: 5}},
		{PageRequest{Page: -2, PageSize: 1000}, PageRequest{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		got := tt.in
		got.Defaults()
		if got != tt.want {
			t.Errorf("Defaults(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 2, 10, 21)
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Error("nil data should become an empty slice")
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if NewPageResponse([]int{}, 1, 10, 0).TotalPages != 0 {
		t.Error("no items means no pages")
	}
}

func TestFind(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, name := range []string{"e", "a", "d", "b", "c"} {
		if err := db.Create(&row{Name: name}).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	query := db.Model(&row{}).Where("name <> ?", "e")
	page, err := Find[row](query, PageRequest{Page: 2, PageSize: 3}, "name ASC")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if page.TotalItems != 4 || page.TotalPages != 2 {
		t.Errorf("unexpected metadata: %+v", page)
	}
	if len(page.Data) != 1 || page.Data[0].Name != "d" {
		t.Errorf("expected [d] on page 2, got %+v", page.Data)
	}

	past, err := Find[row](query, PageRequest{Page: 9, PageSize: 3}, "name ASC")
	if err != nil {
		t.Fatalf("Find past end: %v", err)
	}
	if past.Data == nil || len(past.Data) != 0 || past.TotalItems != 4 {
		t.Errorf("expected an empty page past the end, got %+v", past)
	}
}
