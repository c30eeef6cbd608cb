package services

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const policySchemaURL = "https://qualitygate.dev/schemas/policy_config.json"

//go:embed policy_schema.json
var policySchemaJSON []byte

var policySchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(policySchemaJSON))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(policySchemaURL, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(policySchemaURL)
})

// validatePolicyDocument checks the raw jsonb document against the policy schema
func validatePolicyDocument(project models.Project) error {
	if len(project.PolicyConfig) == 0 {
		return nil
	}
	schema, err := policySchema()
	if err != nil {
		return fmt.Errorf("could not compile policy schema: %w", err)
	}
	raw, err := json.Marshal(project.PolicyConfig)
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

// resolvePolicy decodes and validates the policy of the project. A broken policy never rejects
// a report, the defaults are used instead and a warning is returned.
func resolvePolicy(project models.Project) (dtos.PolicyConfig, []string) {
	if err := validatePolicyDocument(project); err != nil {
		return dtos.PolicyConfig{}, []string{fmt.Sprintf("policy_config does not match the schema, using the default policy: %s", err)}
	}
	var policy dtos.PolicyConfig
	if err := project.PolicyConfig.Decode(&policy); err != nil {
		return dtos.PolicyConfig{}, []string{fmt.Sprintf("policy_config could not be read, using the default policy: %s", err)}
	}
	if err := shared.V.Struct(policy); err != nil {
		return dtos.PolicyConfig{}, []string{fmt.Sprintf("policy_config is invalid, using the default policy: %s", err)}
	}
	return policy, nil
}
