package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// DiffGenres compares the stored genre set with the wanted one and returns
// the genres to insert and to delete. Genres present in both are left out,
// so equal sets produce no work.
func DiffGenres(current, wanted []string) (add, remove []string) {
	have := make(map[string]struct{}, len(current))
	for _, g := range current {
		have[g] = struct{}{}
	}
	want := make(map[string]struct{}, len(wanted))
	for _, g := range wanted {
		if _, dup := want[g]; dup {
			continue
		}
		want[g] = struct{}{}
		if _, ok := have[g]; !ok {
			add = append(add, g)
		}
	}
	for _, g := range current {
		if _, ok := want[g]; !ok {
			remove = append(remove, g)
		}
	}
	return add, remove
}

// reconcileGenres brings the owner's genre rows in line with wanted inside
// tx. T is the association model; row builds one for a genre.
func reconcileGenres[T any](tx *gorm.DB, ownerColumn string, ownerID uint, wanted []string, row func(genre string) T) error {
	var zero T
	var current []string
	if err := tx.Model(&zero).Where(ownerColumn+" = ?", ownerID).Pluck("genre", &current).Error; err != nil {
		return fmt.Errorf("load genres: %w", err)
	}

	add, remove := DiffGenres(current, wanted)
	if len(remove) > 0 {
		if err := tx.Where(ownerColumn+" = ? AND genre IN ?", ownerID, remove).Delete(&zero).Error; err != nil {
			return fmt.Errorf("remove genres: %w", translateError(err))
		}
	}
	if len(add) > 0 {
		rows := make([]T, 0, len(add))
		for _, g := range add {
			rows = append(rows, row(g))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("add genres: %w", translateError(err))
		}
	}
	return nil
}
