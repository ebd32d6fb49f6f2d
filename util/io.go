package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return value, fmt.Errorf("file not found: %s", file)
	}
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return value, nil
}

func ReadJSON[T any](reader io.Reader) (T, error) {
	var value T
	err := json.NewDecoder(reader).Decode(&value)
	return value, err
}

// Iterates the rows of a delimited file, mapping columns onto the fields of T by their csv tag.
//
// Rows with a wrong field count or unparsable values are skipped or left zeroed.
func ReadCSV[T any](reader io.Reader, delimiter rune) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		csv_reader := csv.NewReader(reader)
		csv_reader.Comma = delimiter
		csv_reader.FieldsPerRecord = -1
		header, err := csv_reader.Read()
		if err != nil {
			return
		}
		name_row_mapping := NewDict[string, int](len(header))
		for i, name := range header {
			name_row_mapping[name] = i
		}

		var val T
		typ := reflect.TypeOf(val)
		num_field := typ.NumField()
		fields := NewList[Triple[int, int, reflect.Kind]](num_field)
		for i := 0; i < num_field; i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("csv")
			if tag == "" || !name_row_mapping.ContainsKey(tag) {
				continue
			}
			row := name_row_mapping[tag]
			switch field.Type.Kind() {
			case reflect.Bool:
				fields.Add(MakeTriple(i, row, reflect.Bool))
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				fields.Add(MakeTriple(i, row, reflect.Int))
			case reflect.Float32, reflect.Float64:
				fields.Add(MakeTriple(i, row, reflect.Float64))
			case reflect.String:
				fields.Add(MakeTriple(i, row, reflect.String))
			}
		}
		for {
			record, err := csv_reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				index := field.A
				row := field.B
				if row >= len(record) || record[row] == "" {
					continue
				}
				value := record[row]
				f := t.Field(index)
				switch field.C {
				case reflect.Bool:
					num, _ := strconv.ParseBool(value)
					f.SetBool(num)
				case reflect.Int:
					num, _ := strconv.ParseInt(value, 10, 64)
					f.SetInt(num)
				case reflect.Float64:
					num, _ := strconv.ParseFloat(value, 64)
					f.SetFloat(num)
				case reflect.String:
					f.SetString(value)
				}
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}
}
