package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the wire shape of each resource. Success responses are
// validated against these before decoding so that a malformed body fails
// with a typed DecodeError instead of half-decoded data.
const (
	accountSchemaJSON = `{
		"type": "object",
		"required": ["id", "type", "name", "balance"],
		"properties": {
			"id":      {"type": "integer"},
			"type":    {"type": "string", "enum": ["bank", "ewallet"]},
			"name":    {"type": "string", "minLength": 1},
			"balance": {"type": "integer"},
			"icon":    {"type": "string"}
		}
	}`

	categorySchemaJSON = `{
		"type": "object",
		"required": ["id", "name"],
		"properties": {
			"id":    {"type": "integer"},
			"name":  {"type": "string", "minLength": 1},
			"type":  {"type": "string", "enum": ["income", "expense"]},
			"icon":  {"type": "string"},
			"color": {"type": "string"}
		}
	}`

	transactionSchemaJSON = `{
		"type": "object",
		"required": ["id", "type", "amount_cents", "date"],
		"properties": {
			"id":           {"type": "integer"},
			"type":         {"type": "string", "enum": ["income", "expense"]},
			"amount_cents": {"type": "integer", "minimum": 1},
			"date":         {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
			"note":         {"type": ["string", "null"]},
			"category_id":  {"type": ["integer", "null"]},
			"account_id":   {"type": ["integer", "null"]}
		}
	}`
)

var (
	accountSchema      = mustSchema(accountSchemaJSON)
	accountListSchema  = mustSchema(listOf(accountSchemaJSON))
	categorySchema     = mustSchema(categorySchemaJSON)
	categoryListSchema = mustSchema(listOf(categorySchemaJSON))
	txnSchema          = mustSchema(transactionSchemaJSON)
	txnListSchema      = mustSchema(listOf(transactionSchemaJSON))
)

func listOf(itemSchema string) string {
	return fmt.Sprintf(`{"type": "array", "items": %s}`, itemSchema)
}

func mustSchema(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

func validateDocument(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	descs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		descs = append(descs, re.String())
	}
	return errors.New(strings.Join(descs, "; "))
}
