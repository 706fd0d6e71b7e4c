package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhachu16/wdg-pm/pkg/project"
)

// Mutation is one typed update command. The closed set of implementations
// below replaces the reflective method dispatch of earlier tooling: every
// operation a caller can request is a concrete type here, and ParseMutation
// is the only place an unknown operation name can surface.
type Mutation interface {
	// Name is the operation's wire/CLI name, e.g. "update_status".
	Name() string
	// Apply runs the mutation against an in-memory record.
	Apply(p *project.Project) error
}

type UpdateStatus struct{ Status string }

func (m UpdateStatus) Name() string { return "update_status" }
func (m UpdateStatus) Apply(p *project.Project) error {
	p.UpdateStatus(m.Status)
	return nil
}

type UpdateQuantity struct{ Quantity int }

func (m UpdateQuantity) Name() string { return "update_quantity" }
func (m UpdateQuantity) Apply(p *project.Project) error {
	return p.UpdateQuantity(m.Quantity)
}

type UpdateMasterID struct{ MasterID string }

func (m UpdateMasterID) Name() string { return "update_master_id" }
func (m UpdateMasterID) Apply(p *project.Project) error {
	if m.MasterID == "" {
		return fmt.Errorf("master ID cannot be empty: %w", project.ErrInvalidArgument)
	}
	p.UpdateMasterID(m.MasterID)
	return nil
}

type UpdateName struct{ ProjectName string }

func (m UpdateName) Name() string { return "update_name" }
func (m UpdateName) Apply(p *project.Project) error {
	p.UpdateName(m.ProjectName)
	return nil
}

type UpdateCustomerID struct{ CustomerID string }

func (m UpdateCustomerID) Name() string { return "update_customer_id" }
func (m UpdateCustomerID) Apply(p *project.Project) error {
	p.UpdateCustomerID(m.CustomerID)
	return nil
}

type UpdateResponsible struct {
	Role      string
	Assignees []string
}

func (m UpdateResponsible) Name() string { return "update_responsible" }
func (m UpdateResponsible) Apply(p *project.Project) error {
	if m.Role == "" {
		return fmt.Errorf("role cannot be empty: %w", project.ErrInvalidArgument)
	}
	p.UpdateResponsible(m.Role, m.Assignees)
	return nil
}

type UpdateShippingInfo struct{ Info map[string]string }

func (m UpdateShippingInfo) Name() string { return "update_shipping_info" }
func (m UpdateShippingInfo) Apply(p *project.Project) error {
	if len(m.Info) == 0 {
		return fmt.Errorf("shipping info cannot be empty: %w", project.ErrInvalidArgument)
	}
	p.UpdateShippingInfo(m.Info)
	return nil
}

type UpdateFile struct {
	Path       string
	NewVersion bool
}

func (m UpdateFile) Name() string { return "update_file" }
func (m UpdateFile) Apply(p *project.Project) error {
	return p.UpdateFile(m.Path, m.NewVersion)
}

type UpdateFileDirectories struct {
	ActiveDir  string // empty means unchanged
	ArchiveDir string // empty means unchanged
}

func (m UpdateFileDirectories) Name() string { return "update_file_directories" }
func (m UpdateFileDirectories) Apply(p *project.Project) error {
	return p.UpdateFileDirectories(m.ActiveDir, m.ArchiveDir)
}

type AddComment struct{ Text string }

func (m AddComment) Name() string { return "add_comment" }
func (m AddComment) Apply(p *project.Project) error {
	p.AddComment(m.Text)
	return nil
}

type EditComment struct {
	ID   int
	Text string
}

func (m EditComment) Name() string { return "edit_comment" }
func (m EditComment) Apply(p *project.Project) error {
	return p.EditComment(m.ID, m.Text)
}

type RemoveComment struct{ ID int }

func (m RemoveComment) Name() string { return "remove_comment" }
func (m RemoveComment) Apply(p *project.Project) error {
	return p.RemoveComment(m.ID)
}

// ParseMutation maps an operation name plus positional string arguments onto
// a typed Mutation. Unknown names fail with ErrUnsupportedOperation;
// malformed arguments fail with ErrInvalidArgument. This preserves the
// front-end "mutate(id, operation, args)" contract without reflective
// dispatch.
func ParseMutation(name string, args []string) (Mutation, error) {
	switch name {
	case "update_status":
		if len(args) < 1 {
			return nil, argErr(name, "needs a status value")
		}
		return UpdateStatus{Status: strings.Join(args, " ")}, nil

	case "update_quantity":
		if len(args) != 1 {
			return nil, argErr(name, "needs exactly one integer")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, argErr(name, fmt.Sprintf("%q is not an integer", args[0]))
		}
		return UpdateQuantity{Quantity: n}, nil

	case "update_master_id":
		if len(args) != 1 {
			return nil, argErr(name, "needs exactly one master ID")
		}
		return UpdateMasterID{MasterID: args[0]}, nil

	case "update_name":
		if len(args) < 1 {
			return nil, argErr(name, "needs a name")
		}
		return UpdateName{ProjectName: strings.Join(args, " ")}, nil

	case "update_customer_id":
		if len(args) != 1 {
			return nil, argErr(name, "needs exactly one customer ID")
		}
		return UpdateCustomerID{CustomerID: args[0]}, nil

	case "update_responsible":
		if len(args) < 2 {
			return nil, argErr(name, "needs a role followed by assignee names")
		}
		return UpdateResponsible{Role: args[0], Assignees: args[1:]}, nil

	case "update_shipping_info":
		if len(args) < 1 {
			return nil, argErr(name, "needs key=value pairs")
		}
		info, err := parsePairs(args)
		if err != nil {
			return nil, argErr(name, err.Error())
		}
		return UpdateShippingInfo{Info: info}, nil

	case "update_file":
		if len(args) < 1 || len(args) > 2 {
			return nil, argErr(name, "needs a path and an optional new-version flag")
		}
		newVersion := false
		if len(args) == 2 {
			v, err := strconv.ParseBool(args[1])
			if err != nil {
				return nil, argErr(name, fmt.Sprintf("%q is not a boolean", args[1]))
			}
			newVersion = v
		}
		return UpdateFile{Path: args[0], NewVersion: newVersion}, nil

	case "update_file_directories":
		if len(args) < 1 {
			return nil, argErr(name, "needs active=<dir> and/or archive=<dir>")
		}
		pairs, err := parsePairs(args)
		if err != nil {
			return nil, argErr(name, err.Error())
		}
		m := UpdateFileDirectories{ActiveDir: pairs["active"], ArchiveDir: pairs["archive"]}
		for key := range pairs {
			if key != "active" && key != "archive" {
				return nil, argErr(name, fmt.Sprintf("unknown directory %q (want active or archive)", key))
			}
		}
		return m, nil

	case "add_comment":
		if len(args) < 1 {
			return nil, argErr(name, "needs comment text")
		}
		return AddComment{Text: strings.Join(args, " ")}, nil

	case "edit_comment":
		if len(args) < 2 {
			return nil, argErr(name, "needs a comment id followed by text")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, argErr(name, fmt.Sprintf("%q is not a comment id", args[0]))
		}
		return EditComment{ID: id, Text: strings.Join(args[1:], " ")}, nil

	case "remove_comment":
		if len(args) != 1 {
			return nil, argErr(name, "needs exactly one comment id")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, argErr(name, fmt.Sprintf("%q is not a comment id", args[0]))
		}
		return RemoveComment{ID: id}, nil

	default:
		return nil, fmt.Errorf("operation %q: %w", name, project.ErrUnsupportedOperation)
	}
}

// OperationNames lists every operation ParseMutation accepts, for help text.
func OperationNames() []string {
	return []string{
		"add_comment", "edit_comment", "remove_comment",
		"update_customer_id", "update_file", "update_file_directories",
		"update_master_id", "update_name", "update_quantity",
		"update_responsible", "update_shipping_info", "update_status",
	}
}

func argErr(operation, detail string) error {
	return fmt.Errorf("operation %s: %s: %w", operation, detail, project.ErrInvalidArgument)
}

// parsePairs parses "key=value" arguments into a map.
func parsePairs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q is not a key=value pair", arg)
		}
		out[key] = value
	}
	return out, nil
}
