// Package schemas holds the JSON Schema documents describing converter output.
package schemas

import _ "embed"

// ResumeSchemaFile is the file name of the resume output schema.
const ResumeSchemaFile = "resume.schema.json"

// ResumeSchema is the content of resume.schema.json.
//
//go:embed resume.schema.json
var ResumeSchema string
