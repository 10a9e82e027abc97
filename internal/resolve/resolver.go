package resolve

import (
	"errors"

	"go.uber.org/zap"

	"schema-typegen/internal/common"
	"schema-typegen/internal/registry"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

// Symbols names integer enum members. *registry.Registry and *registry.Lazy
// implement it; a miss must wrap registry.ErrUnknownSymbol.
type Symbols interface {
	Symbol(value int64) (string, error)
}

var errNoRegistry = errors.New("no symbol registry configured")

// Resolver turns schema nodes into type descriptors.
type Resolver struct {
	symbols Symbols
	namer   Namer
	log     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNamer sets the title-to-type-name derivation.
func WithNamer(n Namer) Option {
	return func(r *Resolver) {
		r.namer = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a Resolver. symbols may be nil, including a nil
// *registry.Registry or *registry.Lazy, when no integer enums are expected;
// resolving one then fails with RegistryUnavailable.
func NewResolver(symbols Symbols, opts ...Option) *Resolver {
	r := &Resolver{
		symbols: normalizeSymbols(symbols),
		namer:   TitleName,
		log:     zap.NewNop(),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Resolve resolves node under the nominal name. name is used to derive the
// names of synthesized declarations and is reported in errors.
func (r *Resolver) Resolve(name string, node *schema.Node) (*typedesc.Descriptor, error) {
	desc, err := r.dispatch(name, node)
	if err != nil {
		r.log.Debug("schema node not resolved", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	r.log.Debug("schema node resolved", zap.String("name", name), zap.Stringer("type", desc.Type))

	return desc, nil
}

func (r *Resolver) dispatch(name string, node *schema.Node) (*typedesc.Descriptor, error) {
	if node == nil {
		return nil, newError(NotATypeSchema, name, "", nil)
	}

	if node.IsReference() {
		return nil, newError(UnsupportedShape, name, "$ref:"+node.Ref, nil)
	}

	if common.IsEmpty(node.Type) {
		return nil, newError(NotATypeSchema, name, "", nil)
	}

	if node.DictionaryValue == nil {
		if common.IsSingle(node.Type) && node.Type[0].Is(schema.TypeArray) {
			return r.resolveArray(name, node)
		}

		return r.resolveScalar(name, node)
	}

	if common.IsSingle(node.Type) && node.Type[0].Is(schema.TypeObject) {
		return r.resolveDictionary(name, node)
	}

	return nil, newError(UnsupportedShape, name, "dictionary with type "+node.Type.String(), nil)
}

func normalizeSymbols(s Symbols) Symbols {
	switch v := s.(type) {
	case *registry.Registry:
		if v == nil {
			return nil
		}
	case *registry.Lazy:
		if v == nil {
			return nil
		}
	}

	return s
}

// symbol names an integer enum value through the registry.
func (r *Resolver) symbol(name string, value int64) (string, error) {
	if r.symbols == nil {
		return "", newError(RegistryUnavailable, name, "", errNoRegistry)
	}

	s, err := r.symbols.Symbol(value)

	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, registry.ErrUnknownSymbol):
		return "", newError(UnknownSymbol, name, "", err)
	default:
		return "", newError(RegistryUnavailable, name, "", err)
	}
}
