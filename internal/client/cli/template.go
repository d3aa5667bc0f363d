package cli

const statusTemplate = `
=== Save Status ===

Local save: {{if .Local}}{{.Local}}{{else}}none{{end}}
{{- if .Local}}
Valid:      {{if .LocalValid}}yes{{else}}no, it will be reset on next load{{end}}
{{- end}}
Last saved: {{if .LastFlush.IsZero}}never{{else}}{{.LastFlush.Format "2006-01-02T15:04:05Z07:00"}}{{end}}
Cloud:      {{if .OnPlatform}}enabled{{else}}standalone{{end}}
`

const helpText = `Commands:
  show                 Show widget expressions
  set <id> <latex>     Replace the latex of an expression
  save                 Save to local storage and the cloud
  import               Export the save and import an edited one
  status               Show local save status
  quit                 Save and exit
`
