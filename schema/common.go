package schema

// NewCommon builds the common attributes from a configuration,
// no validation is performed on the values.
func NewCommon[F Format](attrs Attrs[F]) Common[F] {
	return Common[F]{
		format:        attrs.Format,
		required:      !attrs.Optional,
		nullable:      attrs.Nullable,
		title:         attrs.Title,
		description:   attrs.Description,
		allowedValues: copyValues(attrs.AllowedValues),
		example:       attrs.Example,
	}
}

func (self Common[F]) Format() F {
	return self.format
}

func (self Common[F]) TypeFormat() (TypeFormat, bool) {
	return typeFormatOf(self.format), true
}

func (self Common[F]) IsRequired() bool {
	return self.required
}

func (self Common[F]) IsNullable() bool {
	return self.nullable
}

func (self Common[F]) Title() string {
	return self.title
}

func (self Common[F]) Description() string {
	return self.description
}

// AllowedValues returns a copy of the enumerated values, nil when absent
func (self Common[F]) AllowedValues() []any {
	return copyValues(self.allowedValues)
}

func (self Common[F]) Example() any {
	return self.example
}

func (self Common[F]) Attrs() Attrs[F] {
	return Attrs[F]{
		Format:        self.format,
		Optional:      !self.required,
		Nullable:      self.nullable,
		Title:         self.title,
		Description:   self.description,
		AllowedValues: copyValues(self.allowedValues),
		Example:       self.example,
	}
}

func (self Common[F]) AsOptional() Common[F] {
	self.required = false
	return self
}

func (self Common[F]) AsRequired() Common[F] {
	self.required = true
	return self
}

func (self Common[F]) AsNullable() Common[F] {
	self.nullable = true
	return self
}

func (self Common[F]) WithAllowedValues(values []any) Common[F] {
	self.allowedValues = copyValues(values)
	return self
}

func (self Common[F]) WithExample(example any) Common[F] {
	self.example = example
	return self
}

// rebuildType flattens the attributes into a fresh JSON object
func (self Common[F]) rebuildType() map[string]any {
	tp := map[string]any{
		"type": self.format.JSONType().String(),
	}
	if self.format != "" {
		tp["format"] = string(self.format)
	}
	if self.nullable {
		tp["nullable"] = true
	}
	if self.title != "" {
		tp["title"] = self.title
	}
	if self.description != "" {
		tp["description"] = self.description
	}
	if self.allowedValues != nil {
		tp["enum"] = copyValues(self.allowedValues)
	}
	if self.example != nil {
		tp["example"] = self.example
	}
	return tp
}

func copyValues(values []any) []any {
	if values == nil {
		return nil
	}
	return append(make([]any, 0, len(values)), values...)
}
