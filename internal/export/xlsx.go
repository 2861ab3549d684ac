// Package export renders parsed faction datasets as an XLSX roster, one row
// per card, for eyeballing a whole document at once.
package export

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/carnevale-tools/card-parser/internal/entity"
)

// Service produces XLSX bytes from parsed faction records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var rosterHeaders = []string{
	"Faction",
	"Name",
	"Page",
	"Rank",
	"Version",
	"Actions",
	"Life",
	"Will",
	"Command",
	"Ducats",
	"Base Size",
	"Keywords",
	"Weapons",
	"Common Abilities",
	"Unique Abilities",
	"Command Abilities",
}

// RosterXLSX returns an XLSX workbook listing every card of every faction.
func (s *Service) RosterXLSX(records []*entity.FactionRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Cards"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range rosterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	cards := 0
	for _, rec := range records {
		for _, c := range rec.Cards {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, rec.Faction)
			write(2, c.Name)
			write(3, c.Page)
			if c.Rank != nil {
				write(4, *c.Rank)
			}
			write(5, c.Version)
			write(6, c.Actions)
			write(7, c.Life)
			write(8, c.Will)
			if c.Command != nil {
				write(9, *c.Command)
			}
			write(10, c.Ducats)
			write(11, c.BaseSize)
			write(12, strings.Join(c.Keywords, ", "))
			write(13, weaponSummary(c.Weapons))
			write(14, strings.Join(c.Abilities.Common, ", "))
			write(15, uniqueSummary(c.Abilities.Unique))
			write(16, commandSummary(c.Abilities.Command))

			row++
			cards++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.roster.ok", "factions", len(records), "cards", cards)
	return buf.Bytes(), nil
}

func weaponSummary(ws []entity.WeaponEntry) string {
	names := make([]string, 0, len(ws))
	for _, w := range ws {
		names = append(names, w.Name)
	}
	return strings.Join(names, ", ")
}

func uniqueSummary(as []entity.UniqueAbility) string {
	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func commandSummary(as []entity.CommandAbility) string {
	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, fmt.Sprintf("%s (%s)", a.Name, a.Type))
	}
	return strings.Join(names, ", ")
}
