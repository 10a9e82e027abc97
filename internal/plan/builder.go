package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/resolve"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

// ErrStrict is returned by Build in strict mode when any property failed.
var ErrStrict = errors.New("strict mode: resolution failed with errors")

// Config holds configuration for the resolution process.
type Config struct {
	// StrictMode makes Build return ErrStrict when diagnostics hold errors.
	StrictMode bool
	// Namer derives type names from titles. Defaults to resolve.TitleName.
	Namer resolve.Namer
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{Namer: resolve.TitleName}
}

// Builder runs the resolution pipeline over root schema documents.
type Builder struct {
	resolver *resolve.Resolver
	config   Config
	log      *zap.Logger
}

// NewBuilder creates a Builder around a configured resolver.
func NewBuilder(resolver *resolve.Resolver, config Config, log *zap.Logger) *Builder {
	if config.Namer == nil {
		config.Namer = resolve.TitleName
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{
		resolver: resolver,
		config:   config,
		log:      log,
	}
}

// Build loads and resolves every root document in paths.
// Load failures of a root document abort the build; property failures are
// recorded as diagnostics.
func (b *Builder) Build(paths []string) (*Plan, error) {
	p := &Plan{}
	loaders := make(map[string]*schema.Loader)

	for _, path := range paths {
		dir := filepath.Dir(path)

		loader, ok := loaders[dir]
		if !ok {
			loader = schema.NewLoader(dir)
			loaders[dir] = loader
		}

		rt, err := b.buildType(loader, path, &p.Diagnostics)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}

		p.Types = append(p.Types, *rt)
	}

	if b.config.StrictMode && p.Diagnostics.HasErrors() {
		return p, ErrStrict
	}

	return p, nil
}

func (b *Builder) buildType(loader *schema.Loader, path string, diags *diagnostic.Diagnostics) (*ResolvedType, error) {
	root, err := loader.Load(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	return b.resolveRoot(loader, path, root, diags)
}

func (b *Builder) resolveRoot(
	loader *schema.Loader,
	source string,
	root *schema.Node,
	diags *diagnostic.Diagnostics,
) (*ResolvedType, error) {
	expanded, err := loader.Expand(root)
	if err != nil {
		return nil, err
	}

	title := expanded.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(source), ".schema.json")
		title = strings.TrimSuffix(title, filepath.Ext(title))
	}

	rt := &ResolvedType{
		Name:        b.config.Namer(title),
		Title:       title,
		Source:      source,
		Description: expanded.Description,
	}

	names := make([]string, 0, len(expanded.Properties))
	for name := range expanded.Properties {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, jsonName := range names {
		prop, ok := b.resolveProperty(loader, rt, expanded, jsonName, diags)
		if ok {
			rt.Properties = append(rt.Properties, *prop)
		}
	}

	b.log.Info("schema resolved",
		zap.String("type", rt.Name),
		zap.Int("properties", len(rt.Properties)),
		zap.Int("failed", len(names)-len(rt.Properties)))

	return rt, nil
}

func (b *Builder) resolveProperty(
	loader *schema.Loader,
	rt *ResolvedType,
	root *schema.Node,
	jsonName string,
	diags *diagnostic.Diagnostics,
) (*ResolvedProperty, bool) {
	node, err := loader.Expand(root.Properties[jsonName])
	if err != nil {
		diags.AddError("schema_load", err.Error(), rt.Title, jsonName)
		return nil, false
	}

	name := rt.Name + b.config.Namer(jsonName)

	desc, err := b.resolver.Resolve(name, node)
	if err != nil {
		diags.AddFailure(err, rt.Title, jsonName)
		return nil, false
	}

	if isOpaque(desc.Type) {
		diags.AddWarning(diagnostic.CodeOpaque, "resolved to "+desc.Type.String(), rt.Title, jsonName)
	}

	if desc.Dependent != nil {
		diags.AddInfo(diagnostic.CodeEnum, "declared "+desc.Dependent.Name, rt.Title, jsonName)
	}

	return &ResolvedProperty{
		JSONName:    jsonName,
		Name:        name,
		Description: node.Description,
		Required:    slices.Contains(root.Required, jsonName),
		Descriptor:  desc,
	}, true
}

// isOpaque reports whether t or its element is the untyped type.
func isOpaque(t typedesc.Type) bool {
	if t.Kind == typedesc.KindOpaque {
		return true
	}

	if t.Kind.IsContainer() && t.Elem != nil {
		return isOpaque(*t.Elem)
	}

	return false
}
