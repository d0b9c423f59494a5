package employee

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// csvColumns is the export column order.
var csvColumns = []string{"id", "nip", "name", "position", "department", "status", "avatarUrl", "joinDate", "email"}

// csvRow is one imported line, keyed by header name.
type csvRow struct {
	ID         string `csv:"id" validate:"required"`
	NIP        string `csv:"nip" validate:"required"`
	Name       string `csv:"name" validate:"required"`
	Position   string `csv:"position" validate:"required"`
	Department string `csv:"department" validate:"required"`
	Status     string `csv:"status" validate:"required,oneof=active inactive"`
	AvatarURL  string `csv:"avatarUrl" validate:"omitempty,url"`
	JoinDate   string `csv:"joinDate" validate:"required,date"`
	Email      string `csv:"email" validate:"required,email"`
}

func (r csvRow) toEmployee() employee.Employee {
	joinDate, _ := time.Parse("2006-01-02", r.JoinDate)
	return employee.Employee{
		ID:         r.ID,
		NIP:        r.NIP,
		Name:       r.Name,
		Position:   r.Position,
		Department: r.Department,
		Status:     employee.Status(r.Status),
		AvatarURL:  r.AvatarURL,
		JoinDate:   joinDate,
		Email:      r.Email,
	}
}

// encodeCSV writes a bare header row followed by one fully quoted row per employee.
func encodeCSV(employees []employee.Employee) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvColumns, ","))
	for _, e := range employees {
		values := []string{
			e.ID, e.NIP, e.Name, e.Position, e.Department, string(e.Status),
			e.AvatarURL, e.JoinDate.Format("2006-01-02"), e.Email,
		}
		for i, v := range values {
			values[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		buf.WriteByte('\n')
		buf.WriteString(strings.Join(values, ","))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// decodeCSV parses and validates every row. The header decides column order.
// Any problem fails the whole file with ErrInvalidCSV.
func decodeCSV(r io.Reader) ([]employee.Employee, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", employee.ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", employee.ErrInvalidCSV, err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{"id", "nip", "name", "position", "department", "status", "joinDate", "email"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", employee.ErrInvalidCSV, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var employees []employee.Employee
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", employee.ErrInvalidCSV, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d", employee.ErrInvalidCSV, line, len(header), len(record))
		}

		row := csvRow{
			ID:         field(record, "id"),
			NIP:        field(record, "nip"),
			Name:       field(record, "name"),
			Position:   field(record, "position"),
			Department: field(record, "department"),
			Status:     field(record, "status"),
			AvatarURL:  field(record, "avatarUrl"),
			JoinDate:   field(record, "joinDate"),
			Email:      field(record, "email"),
		}
		if err := validator.Struct(row); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", employee.ErrInvalidCSV, line, err)
		}
		employees = append(employees, row.toEmployee())
	}

	return employees, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
