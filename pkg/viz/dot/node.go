package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// formatNode renders one node declaration. Nodes with a resolvable icon get
// an HTML table label with the icon, bold name, and per-type detail rows;
// everything else falls back to the synthesized text label.
func (g *Generator) formatNode(n *graph.Node) string {
	var attrs []string

	iconPath, hasIcon := g.icons.IconPath(n.Type)
	if hasIcon {
		fill, penwidth, style, border := g.nodeStyling(n)
		label := g.htmlLabel(n, iconPath, fill)
		attrs = append(attrs,
			"label="+label,
			fmt.Sprintf("fillcolor=\"%s\"", fill),
			"shape=\"box\"",
			fmt.Sprintf("penwidth=\"%s\"", penwidth),
			fmt.Sprintf("style=\"%s\"", style),
			fmt.Sprintf("color=\"%s\"", border),
			fmt.Sprintf("fontname=\"%s\"", g.palette.FontName),
		)
	} else {
		attrs = append(attrs,
			fmt.Sprintf("label=\"%s\"", escape(n.Label)),
			"shape=\"box\"",
			"style=\"filled\"",
			fmt.Sprintf("fillcolor=\"%s\"", g.palette.NodeFill),
			fmt.Sprintf("fontname=\"%s\"", g.palette.FontName),
			fmt.Sprintf("fontcolor=\"%s\"", g.palette.FontColor),
		)
	}

	for _, k := range sortedAttrKeys(n.Attrs) {
		attrs = append(attrs, fmt.Sprintf("%s=\"%s\"", k, escape(graph.ScalarString(n.Attrs[k]))))
	}

	return fmt.Sprintf("\"%s\" [%s];", n.ID, strings.Join(attrs, ", "))
}

// nodeStyling picks fill, border, and line treatment. Placeholder resources
// referenced from outside the subscription are visually set apart, cross
// tenant ones more strongly.
func (g *Generator) nodeStyling(n *graph.Node) (fill, penwidth, style, border string) {
	placeholder := attrTrue(n, "prop_is_placeholder")
	crossTenant := attrTrue(n, "prop_is_cross_tenant")
	switch {
	case placeholder && crossTenant:
		return g.palette.CrossTenantFill, "2", "dashed", "red"
	case placeholder:
		return g.palette.PlaceholderFill, "2", "dotted", "orange"
	default:
		return g.palette.PlainNodeFill, "1", "filled", g.palette.EdgeColor
	}
}

func (g *Generator) htmlLabel(n *graph.Node, iconPath, fill string) string {
	var rows []string
	rows = append(rows, g.providerRows(n)...)
	rows = append(rows, g.powerStateRow(n)...)
	rows = append(rows, g.detailRows(n)...)
	rows = append(rows, g.placeholderRows(n)...)

	return fmt.Sprintf(
		`<<TABLE border="0" cellborder="0" cellpadding="1" cellspacing="0" BGCOLOR="%s"><TR><TD ALIGN="center" colspan="2" height="32" width="64"><img src="%s"/></TD></TR><TR><TD align="center" colspan="2"><B><FONT POINT-SIZE="11">%s</FONT></B></TD></TR>%s</TABLE>>`,
		fill, iconPath, htmlEscape(n.Name), strings.Join(rows, ""))
}

func (g *Generator) providerRows(n *graph.Node) []string {
	if g.cfg.Verbosity < model.VerbosityStandard || n.Type == "" || attrTrue(n, "prop_hide_provider") {
		return nil
	}
	provider, typeName, ok := strings.Cut(n.Type, "/")
	if !ok {
		return []string{detailRow("Type:", n.Type)}
	}
	return []string{
		detailRow("Provider:", strings.TrimPrefix(provider, "Microsoft.")),
		detailRow("Type:", typeName),
	}
}

func (g *Generator) powerStateRow(n *graph.Node) []string {
	if !g.cfg.ShowPowerState || !strings.EqualFold(n.Type, "Microsoft.Compute/virtualMachines") {
		return nil
	}
	state := n.Attr("power_state")
	if state == "" {
		return nil
	}
	color := "orange"
	switch state {
	case "running":
		color = "green"
	case "stopped", "deallocated":
		color = "red"
	}
	return []string{fmt.Sprintf(
		`<TR><TD align="right"><FONT POINT-SIZE="9">State:</FONT></TD><TD align="left"><FONT POINT-SIZE="9" COLOR="%s"><B>%s</B></FONT></TD></TR>`,
		color, htmlEscape(strings.ToUpper(state)))}
}

// detailRows adds type-specific property rows. Standard verbosity shows the
// headline property of each type; detailed verbosity adds the rest.
func (g *Generator) detailRows(n *graph.Node) []string {
	if g.cfg.Verbosity < model.VerbosityStandard {
		return nil
	}
	detailed := g.cfg.Verbosity >= model.VerbosityDetailed
	var rows []string

	add := func(attr, label string) {
		if v := n.Attr(attr); v != "" {
			rows = append(rows, detailRow(label, v))
		}
	}

	switch strings.ToLower(n.Type) {
	case "microsoft.compute/virtualmachines":
		add("prop_vm_size", "Size:")
		if detailed {
			add("prop_os_type", "OS:")
			add("prop_os_sku", "SKU:")
			if v := n.Attr("prop_os_disk_size_gb"); v != "" {
				rows = append(rows, detailRow("OS Disk:", v+"GB"))
			}
		}
	case "microsoft.compute/disks":
		if v := n.Attr("prop_disk_size_gb"); v != "" {
			rows = append(rows, detailRow("Size:", v+"GB"))
		}
		if detailed {
			add("prop_sku", "SKU:")
			add("prop_disk_state", "State:")
		}
	case "microsoft.storage/storageaccounts":
		add("prop_sku", "SKU:")
		if detailed {
			add("prop_kind", "Kind:")
			add("prop_access_tier", "Tier:")
		}
	case "microsoft.network/networkinterfaces":
		add("prop_private_ip", "Private IP:")
		if detailed {
			add("prop_public_ip_name", "Public IP:")
			add("prop_subnet_name", "Subnet:")
		}
	case "microsoft.network/publicipaddresses":
		add("prop_ip_address", "IP Address:")
		if detailed {
			add("prop_allocation_method", "Allocation:")
			add("prop_sku", "SKU:")
		}
	case "microsoft.network/virtualnetworks":
		add("prop_address_space", "Address Space:")
		if detailed {
			add("prop_subnet_count", "Subnets:")
		}
	case "microsoft.network/virtualnetworks/subnets":
		if v := n.Attr("prop_address_prefix"); v != "" && v != "unknown" {
			rows = append(rows, detailRow("CIDR:", v))
		}
	case "microsoft.network/privateendpoints":
		add("prop_subnet_name", "Subnet:")
	}

	if n.Grouped {
		add("resource_count", "Resources:")
	}
	return rows
}

func (g *Generator) placeholderRows(n *graph.Node) []string {
	if !attrTrue(n, "prop_is_placeholder") {
		return nil
	}
	crossTenant := attrTrue(n, "prop_is_cross_tenant")
	var rows []string

	if note := n.Attr("prop_access_note"); note != "" {
		color := "orange"
		if crossTenant {
			color = "red"
		}
		rows = append(rows, fmt.Sprintf(
			`<TR><TD align="center" colspan="2"><FONT POINT-SIZE="8" COLOR="%s"><I>%s</I></FONT></TD></TR>`,
			color, htmlEscape(note)))
	}
	if crossTenant {
		if note := n.Attr("prop_tenant_note"); note != "" {
			if len(note) > 60 {
				note = note[:57] + "..."
			}
			rows = append(rows, fmt.Sprintf(
				`<TR><TD align="center" colspan="2"><FONT POINT-SIZE="7" COLOR="red"><I>%s</I></FONT></TD></TR>`,
				htmlEscape(note)))
		}
	}
	return rows
}

func detailRow(label, value string) string {
	return fmt.Sprintf(
		`<TR><TD align="right"><FONT POINT-SIZE="9">%s</FONT></TD><TD align="left"><FONT POINT-SIZE="9">%s</FONT></TD></TR>`,
		htmlEscape(label), htmlEscape(value))
}

func attrTrue(n *graph.Node, key string) bool {
	return strings.EqualFold(n.Attr(key), "true")
}

func sortedAttrKeys(attrs map[string]any) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return strings.ReplaceAll(s, `"`, "&quot;")
}
