package generator

import (
	"fmt"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// defaultPagingRoot is the records root implied by paging when no explicit
// RootProperty overrides it.
const defaultPagingRoot = "records"

// buildProxy derives the remote access block. It returns nil when the model
// declares nothing a proxy could carry: no CRUD methods, no reader
// properties, no writer and no paging-parameter suppression.
func buildProxy(definition *model.ModelDefinition, profile dialect.Profile, opts Options) (jsvalue.Value, error) {
	needsReader := definition.Paging ||
		definition.MessageProperty != "" ||
		definition.SuccessProperty != "" ||
		definition.TotalProperty != "" ||
		definition.RootProperty != ""

	if !definition.HasMethods() && !needsReader && definition.Writer == "" &&
		!definition.DisablePagingParameters {
		return nil, nil
	}
	if definition.Writer != "" && !profile.SupportsWriter {
		return nil, fmt.Errorf("generator: proxy writer is not supported by output format %q", profile.Name)
	}

	proxy := jsvalue.NewObject()
	proxy.Put("type", jsvalue.String("direct"))
	proxy.Put("idParam", jsvalue.String(definition.EffectiveIDProperty()))

	if definition.DisablePagingParameters {
		// An explicit undefined keeps the framework from sending the
		// parameter at all; omission would let its default apply.
		proxy.Put("pageParam", jsvalue.Undefined)
		proxy.Put("startParam", jsvalue.Undefined)
		proxy.Put("limitParam", jsvalue.Undefined)
	}

	switch {
	case definition.ReadOnly():
		// A read-only model collapses to the compact single-function form.
		proxy.Put("directFn", methodRef(definition.ReadMethod, opts))
	case definition.HasMethods():
		api := jsvalue.NewObject()
		if definition.ReadMethod != "" {
			api.Put("read", methodRef(definition.ReadMethod, opts))
		}
		if definition.CreateMethod != "" {
			api.Put("create", methodRef(definition.CreateMethod, opts))
		}
		if definition.UpdateMethod != "" {
			api.Put("update", methodRef(definition.UpdateMethod, opts))
		}
		if definition.DestroyMethod != "" {
			api.Put("destroy", methodRef(definition.DestroyMethod, opts))
		}
		proxy.Put("api", api)
	}

	proxy.PutString("writer", definition.Writer)

	if needsReader {
		reader := jsvalue.NewObject()
		reader.PutString("messageProperty", definition.MessageProperty)
		reader.PutString("totalProperty", definition.TotalProperty)
		root := definition.RootProperty
		if root == "" && definition.Paging {
			root = defaultPagingRoot
		}
		if root != "" {
			reader.Put(profile.RootKey, jsvalue.String(root))
		}
		reader.PutString("successProperty", definition.SuccessProperty)
		proxy.Put("reader", reader)
	}

	return proxy, nil
}

// methodRef renders a CRUD method reference, bare by default so the client
// resolves it as an expression against the remoting namespace.
func methodRef(reference string, opts Options) jsvalue.Value {
	if opts.SurroundAPIWithQuotes {
		return jsvalue.String(reference)
	}
	return jsvalue.Raw(reference)
}
