package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	m "repattern.dev/pkg/repattern/internal/model"
)

// Format is the encoding of a change-set document.
type Format string

// Supported change-set encodings.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

var validate = validator.New()

// FormatOf infers the document format from a file extension.
func FormatOf(path m.Path) (Format, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported change-set format: %s", path)
	}
}

// EditScriptAdapter loads change-set documents into validated edit scripts.
type EditScriptAdapter interface {
	Load(ctx context.Context, path m.Path) (*m.EditScript, error)
}

// LocalEditScriptAdapter reads change-sets through a SourceFSAdapter.
type LocalEditScriptAdapter struct {
	fs SourceFSAdapter
}

// NewLocalEditScriptAdapter constructs a LocalEditScriptAdapter.
func NewLocalEditScriptAdapter(fs SourceFSAdapter) *LocalEditScriptAdapter {
	return &LocalEditScriptAdapter{fs: fs}
}

// Load reads, decodes and validates the change-set at path.
func (a *LocalEditScriptAdapter) Load(ctx context.Context, path m.Path) (*m.EditScript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read change-set %s: %w", path, err)
	}

	script, err := DecodeEditScript(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load change-set %s: %w", path, err)
	}

	if script.File == "" {
		script.File = path
	}

	return script, nil
}

// DecodeEditScript decodes one change-set document and converts it into a
// validated EditScript. A document without an id gets a random one.
func DecodeEditScript(data []byte, format Format) (*m.EditScript, error) {
	var doc ScriptDocument

	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported change-set format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", format, err)
	}

	return doc.EditScript()
}

// EncodeDocument encodes a document in the given format.
func EncodeDocument(doc ScriptDocument, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatMsgpack:
		return msgpack.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported change-set format: %s", format)
	}
}

// ScriptDocument is the on-disk shape of a change-set. Nodes reference each other
// by string id; children are ordered as the nodes appear in the document.
type ScriptDocument struct {
	ID         string              `json:"id,omitempty" yaml:"id,omitempty" msgpack:"id,omitempty"`
	File       string              `json:"file,omitempty" yaml:"file,omitempty" msgpack:"file,omitempty"`
	Nodes      []NodeDocument      `json:"nodes" yaml:"nodes" msgpack:"nodes" validate:"dive"`
	Operations []OperationDocument `json:"operations" yaml:"operations" msgpack:"operations" validate:"dive"`
}

// NodeDocument is one tree node of a ScriptDocument.
type NodeDocument struct {
	ID       string   `json:"id" yaml:"id" msgpack:"id" validate:"required"`
	Side     string   `json:"side" yaml:"side" msgpack:"side" validate:"required,oneof=before after"`
	Kind     string   `json:"kind" yaml:"kind" msgpack:"kind" validate:"required"`
	Role     string   `json:"role,omitempty" yaml:"role,omitempty" msgpack:"role,omitempty"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Parent   string   `json:"parent,omitempty" yaml:"parent,omitempty" msgpack:"parent,omitempty"`
	Partner  string   `json:"partner,omitempty" yaml:"partner,omitempty" msgpack:"partner,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty" msgpack:"tags,omitempty"`
	Constant bool     `json:"constant,omitempty" yaml:"constant,omitempty" msgpack:"constant,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty" msgpack:"line,omitempty" validate:"gte=0"`
	EndLine  int      `json:"end_line,omitempty" yaml:"end_line,omitempty" msgpack:"end_line,omitempty" validate:"gte=0"`
}

// OperationDocument is one edit operation of a ScriptDocument.
type OperationDocument struct {
	Type string `json:"type" yaml:"type" msgpack:"type" validate:"required"`
	Node string `json:"node" yaml:"node" msgpack:"node" validate:"required"`
	Dst  string `json:"dst,omitempty" yaml:"dst,omitempty" msgpack:"dst,omitempty"`
}

// EditScript validates the document and converts it into the arena form.
func (d ScriptDocument) EditScript() (*m.EditScript, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrInvalidScript, err)
	}

	ids := make(map[string]m.NodeID, len(d.Nodes))
	for i, n := range d.Nodes {
		if _, dup := ids[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", m.ErrInvalidScript, n.ID)
		}

		ids[n.ID] = m.NodeID(i)
	}

	script := &m.EditScript{
		ID:    d.ID,
		File:  m.Path(d.File),
		Nodes: make([]m.Node, len(d.Nodes)),
	}

	if script.ID == "" {
		script.ID = uuid.NewString()
	}

	for i, n := range d.Nodes {
		node, err := n.node(m.NodeID(i), m.Path(d.File), ids)
		if err != nil {
			return nil, err
		}

		script.Nodes[i] = node
	}

	for i := range script.Nodes {
		if parent := script.Nodes[i].Parent; parent != m.NoNode {
			script.Nodes[parent].Children = append(script.Nodes[parent].Children, m.NodeID(i))
		}
	}

	script.Operations = make([]m.Operation, 0, len(d.Operations))

	for i, o := range d.Operations {
		op, err := o.operation(i, ids)
		if err != nil {
			return nil, err
		}

		script.Operations = append(script.Operations, op)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}

	return script, nil
}

func (n NodeDocument) node(id m.NodeID, file m.Path, ids map[string]m.NodeID) (m.Node, error) {
	kind, err := m.ParseKind(n.Kind)
	if err != nil {
		return m.Node{}, fmt.Errorf("%w: node %q: %w", m.ErrInvalidScript, n.ID, err)
	}

	role := m.Role(n.Role)
	if !slices.Contains(m.Roles, role) {
		return m.Node{}, fmt.Errorf("%w: node %q has unknown role %q", m.ErrInvalidScript, n.ID, n.Role)
	}

	var tags m.Tags

	for _, name := range n.Tags {
		tag, err := m.ParseTag(name)
		if err != nil {
			return m.Node{}, fmt.Errorf("%w: node %q: %w", m.ErrInvalidScript, n.ID, err)
		}

		tags |= tag
	}

	parent, err := resolveRef(ids, n.Parent)
	if err != nil {
		return m.Node{}, fmt.Errorf("node %q parent: %w", n.ID, err)
	}

	partner, err := resolveRef(ids, n.Partner)
	if err != nil {
		return m.Node{}, fmt.Errorf("node %q partner: %w", n.ID, err)
	}

	side := m.Before
	if n.Side == "after" {
		side = m.After
	}

	endLine := n.EndLine
	if endLine == 0 {
		endLine = n.Line
	}

	return m.Node{
		ID:       id,
		Kind:     kind,
		Role:     role,
		Label:    n.Label,
		Side:     side,
		Parent:   parent,
		Partner:  partner,
		Span:     m.Span{File: file, StartLine: n.Line, EndLine: endLine},
		Tags:     tags,
		Constant: n.Constant,
	}, nil
}

func (o OperationDocument) operation(index int, ids map[string]m.NodeID) (m.Operation, error) {
	kind, err := m.ParseOpKind(o.Type)
	if err != nil {
		return m.Operation{}, fmt.Errorf("%w: operation %d: %w", m.ErrInvalidScript, index, err)
	}

	node, err := resolveRef(ids, o.Node)
	if err != nil {
		return m.Operation{}, fmt.Errorf("operation %d node: %w", index, err)
	}

	dst := m.NoNode

	if kind == m.OpUpdate || kind == m.OpMove {
		if o.Dst == "" {
			return m.Operation{}, fmt.Errorf("%w: %s operation %d has no destination", m.ErrInvalidScript, kind, index)
		}

		if dst, err = resolveRef(ids, o.Dst); err != nil {
			return m.Operation{}, fmt.Errorf("operation %d dst: %w", index, err)
		}
	}

	return m.Operation{Index: index, Kind: kind, Node: node, Dst: dst}, nil
}

func resolveRef(ids map[string]m.NodeID, ref string) (m.NodeID, error) {
	if ref == "" {
		return m.NoNode, nil
	}

	id, ok := ids[ref]
	if !ok {
		return m.NoNode, fmt.Errorf("%w: unknown node reference %q", m.ErrInvalidScript, ref)
	}

	return id, nil
}
