//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tool derives tool schemas from Go types.
package tool

import (
	"reflect"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-agent-devkit/tool"
)

// GenerateJSONSchema generates a JSON schema for t.
//
// Struct fields are named after their json tag. A field is required when it is
// neither a pointer nor tagged omitempty, or when its jsonschema tag says
// "required". The jsonschema tag also understands description=, enum= (may
// repeat) and default=. Values are comma separated and may not contain commas.
func GenerateJSONSchema(t reflect.Type) *tool.Schema {
	if t == nil {
		return &tool.Schema{Type: "object"}
	}
	switch t.Kind() {
	case reflect.Struct:
		return structSchema(t, true)
	case reflect.Ptr:
		schema := GenerateJSONSchema(t.Elem())
		schema.Type += ",null"
		return schema
	default:
		return GenerateFieldSchema(t)
	}
}

// GenerateFieldSchema generates the schema of a single value type.
func GenerateFieldSchema(t reflect.Type) *tool.Schema {
	switch t.Kind() {
	case reflect.String:
		return &tool.Schema{Type: "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &tool.Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &tool.Schema{Type: "number"}
	case reflect.Bool:
		return &tool.Schema{Type: "boolean"}
	case reflect.Slice, reflect.Array:
		return &tool.Schema{
			Type:  "array",
			Items: GenerateFieldSchema(t.Elem()),
		}
	case reflect.Map:
		return &tool.Schema{
			Type:                 "object",
			AdditionalProperties: GenerateFieldSchema(t.Elem()),
		}
	case reflect.Ptr:
		schema := GenerateFieldSchema(t.Elem())
		schema.Type += ",null"
		return schema
	case reflect.Struct:
		return structSchema(t, false)
	default:
		return &tool.Schema{Type: "object"}
	}
}

func structSchema(t reflect.Type, withRequired bool) *tool.Schema {
	schema := &tool.Schema{
		Type:       "object",
		Properties: map[string]*tool.Schema{},
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		fieldSchema := GenerateFieldSchema(field.Type)
		tag := parseSchemaTag(field.Tag.Get("jsonschema"))
		if tag.description != "" {
			fieldSchema.Description = tag.description
		}
		for _, v := range tag.enum {
			fieldSchema.Enum = append(fieldSchema.Enum, convertValue(field.Type, v))
		}
		if tag.hasDefault {
			fieldSchema.Default = convertValue(field.Type, tag.def)
		}
		schema.Properties[name] = fieldSchema

		if !withRequired {
			continue
		}
		if tag.required || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

type schemaTag struct {
	description string
	enum        []string
	def         string
	hasDefault  bool
	required    bool
}

func parseSchemaTag(tag string) schemaTag {
	var st schemaTag
	if tag == "" {
		return st
	}
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(part, "=")
		switch strings.TrimSpace(key) {
		case "description":
			st.description = value
		case "enum":
			st.enum = append(st.enum, value)
		case "default":
			st.def = value
			st.hasDefault = true
		case "required":
			st.required = true
		}
	}
	return st
}

// convertValue types a tag literal after the field kind so that integer enums
// and defaults are emitted as JSON numbers.
func convertValue(t reflect.Type, v string) any {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return v
}
