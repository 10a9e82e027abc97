// Package plan provides the resolution pipeline that turns root schema
// documents into a Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Load each root document and expand its $ref and allOf members
//  2. For each property, in name order:
//     - expand the property schema
//     - resolve it under "<RootTitle><PropertyName>"
//     - record failures as diagnostics and keep going
//  3. Report opaque fallbacks and synthesized enums as warnings and infos
package plan
