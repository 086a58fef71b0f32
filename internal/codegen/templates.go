package codegen

const typescriptTemplate = `{{header}}

export enum Scancode {
  Invalid = 0,
{{- range .Keys}}
  {{.Key}} = {{.Scancode}},
{{- end}}
}

export const ScancodeToCode: Record<number, string> = {
{{- range .Keys}}{{if .Code}}
  [Scancode.{{.Key}}]: "{{.Code}}",
{{- end}}{{end}}
};
`

const csharpTemplate = `{{header}}

namespace WebKeys;

public enum Scancode : ushort
{
    Invalid = 0,
{{- range .Keys}}
    {{.Key}} = {{.Scancode}},
{{- end}}
}

public static class ScancodeCodes
{
    public static readonly System.Collections.Generic.IReadOnlyDictionary<Scancode, string> ToCode =
        new System.Collections.Generic.Dictionary<Scancode, string>
        {
{{- range .Keys}}{{if .Code}}
            [Scancode.{{.Key}}] = "{{.Code}}",
{{- end}}{{end}}
        };
}
`

const cTemplate = `{{header}}

#ifndef WEBKEYS_SCANCODES_H
#define WEBKEYS_SCANCODES_H

#include <stdint.h>

#define WEBKEYS_SC_INVALID ((uint16_t)0)
{{- range .Keys}}
#define WEBKEYS_SC_{{upper .Key}} ((uint16_t){{.Scancode}})
{{- end}}

#endif
`
