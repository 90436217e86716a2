// Package schema описывает коллекции: имена, поля и вторичные индексы.
// Хранилища используют эти описания, чтобы одинаково понимать запросы.
package schema

import (
	"cmp"
	"fmt"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
)

// Field - логическое поле коллекции.
type Field[T any] struct {
	Key    string // ключ в JSON/BSON
	Column string // колонка в SQL
	Value  func(T) any
}

// Index - вторичный индекс по одному или нескольким полям.
type Index struct {
	Name   string
	Fields []string
}

// Eq - условие равенства по полю.
type Eq struct {
	Field string
	Value any
}

// Collection - описание коллекции с записями типа T.
type Collection[T domain.Record] struct {
	Name    string
	New     func() T
	Clone   func(T) T
	Fields  map[string]Field[T]
	Indexes map[string]Index
}

// CreationField - системное поле порядка вставки, есть у всех коллекций.
const CreationField = "creationTime"

// Field возвращает описание поля или ошибку, если поле не объявлено.
func (c *Collection[T]) Field(name string) (Field[T], error) {
	if name == CreationField {
		return Field[T]{Key: CreationField, Column: "creation_time", Value: func(r T) any { return r.Created() }}, nil
	}
	f, ok := c.Fields[name]
	if !ok {
		return Field[T]{}, fmt.Errorf("%s: unknown field %q", c.Name, name)
	}
	return f, nil
}

// SortFields возвращает поля, по которым упорядочивает индекс.
// Пустое имя индекса - порядок вставки.
func (c *Collection[T]) SortFields(index string) ([]Field[T], error) {
	if index == "" {
		f, _ := c.Field(CreationField)
		return []Field[T]{f}, nil
	}
	idx, ok := c.Indexes[index]
	if !ok {
		return nil, fmt.Errorf("%s: unknown index %q", c.Name, index)
	}
	fields := make([]Field[T], 0, len(idx.Fields))
	for _, name := range idx.Fields {
		f, err := c.Field(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Compare сравнивает две записи по полям индекса.
func Compare[T any](fields []Field[T], a, b T) int {
	for _, f := range fields {
		if c := compareValues(f.Value(a), f.Value(b)); c != 0 {
			return c
		}
	}
	return 0
}

// Match проверяет запись на все условия равенства.
func (c *Collection[T]) Match(where []Eq, rec T) (bool, error) {
	for _, eq := range where {
		f, err := c.Field(eq.Field)
		if err != nil {
			return false, err
		}
		if f.Value(rec) != eq.Value {
			return false, nil
		}
	}
	return true, nil
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		return cmp.Compare(av, b.(string))
	case int:
		return cmp.Compare(av, b.(int))
	case int64:
		return cmp.Compare(av, b.(int64))
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case time.Time:
		return av.Compare(b.(time.Time))
	default:
		panic(fmt.Sprintf("schema: unsupported index value %T", a))
	}
}

// clone - поверхностная копия для записей без срезов и указателей.
func clone[V any](v *V) *V {
	cp := *v
	return &cp
}

// clonePtr копирует значение за указателем, nil остаётся nil.
func clonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
