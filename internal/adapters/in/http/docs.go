package http

import (
	"fmt"
	"sync"

	"ordering/internal/generated/servers"

	"github.com/swaggo/swag"
)

var registerOnce sync.Once

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string { return d.json }

// RegisterSwaggerDoc publishes the embedded OpenAPI document under swag's
// default instance name, which is what echo-swagger serves as doc.json.
// Only the first call registers.
func RegisterSwaggerDoc() error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})
	return nil
}
