package config

import "regexp"

// projectNamePattern: lowercase, digits, hyphen-separated segments,
// starting with a letter (e.g. "my-app", "crm2").
var projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// identPattern: lowercase snake_case identifiers for resource and field
// names, starting with a letter.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks a ProjectConfig and returns all failures at once.
func (c *ProjectConfig) Validate() error {
	var errs []ValidationError

	if c.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	} else if !projectNamePattern.MatchString(c.Name) {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "must be lowercase with hyphen-separated segments (e.g. \"my-app\")",
			Value:   c.Name,
		})
	}

	if !c.ProjectType.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "project_type",
			Message: "must be one of: work, personal",
			Value:   string(c.ProjectType),
		})
	}

	if !c.FrontendType.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "frontend_type",
			Message: "must be one of: react, htmx",
			Value:   string(c.FrontendType),
		})
	}

	if c.APIPort < 1 || c.APIPort > 65535 {
		errs = append(errs, ValidationError{
			Field:   "api_port",
			Message: "must be between 1 and 65535",
			Value:   c.APIPort,
		})
	}

	if c.FrontendPort < 1 || c.FrontendPort > 65535 {
		errs = append(errs, ValidationError{
			Field:   "frontend_port",
			Message: "must be between 1 and 65535",
			Value:   c.FrontendPort,
		})
	}

	if c.IsMultiRepo() && c.FrontendPort == c.APIPort {
		errs = append(errs, ValidationError{
			Field:   "frontend_port",
			Message: "must differ from api_port",
			Value:   c.FrontendPort,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// Validate checks a ComponentConfig. Whether the component type is
// implemented is decided by the component package; here only the shape
// of the request is checked.
func (c *ComponentConfig) Validate() error {
	var errs []ValidationError

	if c.Type == "" {
		errs = append(errs, ValidationError{Field: "component_type", Message: "is required"})
	}

	if c.ResourceName == "" {
		errs = append(errs, ValidationError{Field: "resource_name", Message: "is required"})
	} else if !identPattern.MatchString(c.ResourceName) {
		errs = append(errs, ValidationError{
			Field:   "resource_name",
			Message: "must be a lowercase identifier (e.g. \"category\")",
			Value:   c.ResourceName,
		})
	}

	for _, f := range c.Fields {
		if !identPattern.MatchString(f.Name) {
			errs = append(errs, ValidationError{
				Field:   "fields",
				Message: "field names must be lowercase identifiers",
				Value:   f.Name,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
