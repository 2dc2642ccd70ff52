// Package directives scans source text for balanced conditional-compilation
// directives (#if, #ifdef, #ifndef, #elif, #else, #endif).
//
// Scan works on already split lines while ScanReader decodes a byte stream
// permissively before scanning it. Matching is purely textual: directive
// conditions are never evaluated and string or comment contexts are not
// recognized.
package directives
