// Package dot emits Graphviz DOT documents with the layout hints that keep
// resource diagrams readable: per-cluster column ordering, rank constraints,
// and invisible alignment edges.
//
// Emission is deterministic. The same graph, clusters, and configuration
// always produce a byte-identical document.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/icons"
	"github.com/azmapper/azmap/pkg/model"
)

// Input is everything one document emission needs.
type Input struct {
	Graph    *graph.Graph
	Clusters []graph.Cluster

	SubscriptionName string
	SubscriptionID   string
}

// Generator emits DOT documents for one configuration.
type Generator struct {
	cfg     model.VisualizationConfig
	palette Palette
	icons   icons.Resolver
}

// NewGenerator creates a generator. A nil resolver disables icons and nodes
// fall back to text labels.
func NewGenerator(cfg model.VisualizationConfig, resolver icons.Resolver) *Generator {
	if resolver == nil {
		resolver = icons.None{}
	}
	return &Generator{
		cfg:     cfg,
		palette: PaletteFor(cfg.Theme),
		icons:   resolver,
	}
}

// Generate renders the full DOT document. An empty graph still yields a
// valid document with graph attributes and defaults only.
func (g *Generator) Generate(in Input) string {
	var b strings.Builder

	b.WriteString("digraph AzureTopology {\n")
	g.writeGraphAttrs(&b)
	g.writeNodeDefaults(&b)
	g.writeEdgeDefaults(&b)

	hasTitle := g.writeSubscriptionTitle(&b, in)

	b.WriteString("\n    subgraph cluster_master {\n")
	b.WriteString("        label=\"\";\n")
	b.WriteString("        style=\"solid\";\n")
	b.WriteString("        color=\"lightgray\";\n")
	b.WriteString("        margin=\"10\";\n\n")
	g.writeContainer(&b, in)
	g.writeStandaloneNodes(&b, in)
	b.WriteString("    }\n\n")

	g.writeEdges(&b, in.Graph)

	if hasTitle {
		g.writeSubscriptionAnchor(&b, in)
	}
	if g.cfg.ShowLegend {
		g.writeLegend(&b, in.Graph)
	}

	b.WriteString("}\n")
	return b.String()
}

func (g *Generator) writeGraphAttrs(b *strings.Builder) {
	p := g.palette
	fmt.Fprintf(b, "    rankdir=\"%s\";\n", g.cfg.Direction.Rankdir())
	fmt.Fprintf(b, "    splines=\"%s\";\n", g.cfg.Splines)
	fmt.Fprintf(b, "    bgcolor=\"%s\";\n", p.Background)
	fmt.Fprintf(b, "    fontname=\"%s\";\n", p.FontName)
	fmt.Fprintf(b, "    fontsize=\"%d\";\n", p.FontSize)
	fmt.Fprintf(b, "    fontcolor=\"%s\";\n", p.FontColor)
	b.WriteString(`    dpi="300";
    concentrate=false;
    compound=true;
    newrank=true;
    ordering="out";
    esep="+15";
    sep="+10";
    nodesep="0.5";
    ranksep="0.4";
    size="12,8!";
    ratio="compress";
    pack="true";
    packmode="clust";
`)
}

func (g *Generator) writeNodeDefaults(b *strings.Builder) {
	p := g.palette
	fmt.Fprintf(b, `    node [
        shape=box,
        style=filled,
        fillcolor="%s",
        fontname="%s",
        fontsize="%d",
        fontcolor="%s",
        color="%s",
        height="1.2",
        width="1.8",
        margin="0.1"
    ];
`, p.NodeFill, p.FontName, p.FontSize, p.FontColor, p.EdgeColor)
}

func (g *Generator) writeEdgeDefaults(b *strings.Builder) {
	p := g.palette
	fmt.Fprintf(b, `    edge [
        fontname="%s",
        fontsize="8",
        fontcolor="%s",
        color="%s"
    ];
`, p.FontName, p.FontColor, p.EdgeColor)
}

func (g *Generator) writeSubscriptionTitle(b *strings.Builder, in Input) bool {
	var title string
	switch {
	case in.SubscriptionName != "" && in.SubscriptionID != "":
		title = fmt.Sprintf("Subscription Name: %s\nSubscription ID: %s", in.SubscriptionName, in.SubscriptionID)
	case in.SubscriptionName != "":
		title = "Subscription Name: " + in.SubscriptionName
	case in.SubscriptionID != "":
		title = "Subscription ID: " + in.SubscriptionID
	default:
		return false
	}

	p := g.palette
	fmt.Fprintf(b, `
    "subscription_title" [
        label="%s",
        shape="box",
        style="filled",
        fillcolor="%s",
        fontname="%s",
        fontsize="10",
        fontcolor="%s",
        color="%s",
        penwidth="0",
        height="0.4",
        width="4.0",
        margin="0.02",
        labeljust="l",
        labelloc="t"
    ];
`, escape(title), p.Background, p.FontName, p.FontColor, p.Background)
	return true
}

// writeSubscriptionAnchor pins the subscription title to the top of the
// layout and tethers it to the first available node so it stays adjacent to
// the content.
func (g *Generator) writeSubscriptionAnchor(b *strings.Builder, in Input) {
	b.WriteString("    {rank=min; \"subscription_title\";}\n")
	if anchor := g.anchorNode(in); anchor != "" {
		fmt.Fprintf(b, "    \"subscription_title\" -> \"%s\" [style=invis, weight=100, minlen=1];\n", anchor)
	}
}

func (g *Generator) anchorNode(in Input) string {
	if len(in.Clusters) > 0 {
		return titleNodeID(in.Clusters[0])
	}
	if nodes := in.Graph.Nodes(); len(nodes) > 0 {
		return nodes[0].ID
	}
	return ""
}

func titleNodeID(c graph.Cluster) string {
	return "title_" + strings.TrimPrefix(c.Name, "cluster_")
}

// writeContainer emits one subgraph per resource group cluster, each with an
// external title node, column ordering by layout priority, and alignment
// edges between machines and their storage.
func (g *Generator) writeContainer(b *strings.Builder, in Input) {
	type titleRef struct{ title, first string }
	var titles []titleRef

	for _, c := range in.Clusters {
		title := titleNodeID(c)
		fmt.Fprintf(b, `        "%s" [
            label="%s",
            shape="plaintext",
            fontsize="10",
            fontcolor="%s",
            height="0.3",
            width="3.0",
            margin="0",
            labeljust="l"
        ];
`, title, escape(c.Label), g.palette.FontColor)

		fmt.Fprintf(b, "        subgraph \"%s\" {\n", c.Name)
		b.WriteString("            label=\"\";\n")
		b.WriteString("            style=\"filled\";\n")
		b.WriteString("            fillcolor=\"lightgray\";\n")
		fmt.Fprintf(b, "            fontcolor=\"%s\";\n", g.palette.FontColor)
		b.WriteString("            rankdir=\"LR\";\n")
		b.WriteString("            margin=\"1\";\n\n")

		tiers := g.partitionByPriority(in.Graph, c.NodeIDs)
		g.writeTiers(b, tiers)
		g.writeTierOrderingEdges(b, tiers)
		g.writeStorageAlignment(b, in.Graph, c.NodeIDs)

		b.WriteString("        }\n\n")

		if len(c.NodeIDs) > 0 {
			titles = append(titles, titleRef{title: title, first: c.NodeIDs[0]})
		}
	}

	if len(titles) > 1 {
		names := make([]string, len(titles))
		for i, t := range titles {
			names[i] = fmt.Sprintf("%q", t.title)
		}
		fmt.Fprintf(b, "        {rank=same; %s;}\n", strings.Join(names, "; "))
	}
	for _, t := range titles {
		fmt.Fprintf(b, "        \"%s\" -> \"%s\" [style=invis, weight=100, minlen=1];\n", t.title, t.first)
	}
}

// tier is one column of nodes sharing a layout priority.
type tier struct {
	priority int
	nodes    []*graph.Node
}

func (g *Generator) partitionByPriority(gr *graph.Graph, ids []string) []tier {
	byPriority := make(map[int][]*graph.Node)
	for _, id := range ids {
		n := gr.Node(id)
		if n == nil {
			continue
		}
		p := LayoutPriority(n.Type)
		byPriority[p] = append(byPriority[p], n)
	}

	priorities := make([]int, 0, len(byPriority))
	for p := range byPriority {
		priorities = append(priorities, p)
	}
	sort.Ints(priorities)

	tiers := make([]tier, 0, len(priorities))
	for _, p := range priorities {
		tiers = append(tiers, tier{priority: p, nodes: byPriority[p]})
	}
	return tiers
}

func (g *Generator) writeTiers(b *strings.Builder, tiers []tier) {
	for _, t := range tiers {
		for _, n := range t.nodes {
			fmt.Fprintf(b, "            %s\n", g.formatNode(n))
		}

		// Storage stays out of the rank constraint so the alignment edges
		// below can pull it next to its machine.
		var ranked []string
		for _, n := range t.nodes {
			if !isStorageType(n.Type) {
				ranked = append(ranked, fmt.Sprintf("%q", n.ID))
			}
		}
		if len(ranked) > 0 {
			fmt.Fprintf(b, "            {rank=same; %s;}\n", strings.Join(ranked, "; "))
		}
		b.WriteString("\n")
	}
}

func (g *Generator) writeTierOrderingEdges(b *strings.Builder, tiers []tier) {
	if len(tiers) < 2 {
		return
	}
	for i := 0; i < len(tiers)-1; i++ {
		fmt.Fprintf(b, "            \"%s\" -> \"%s\" [style=invis, weight=100];\n",
			tiers[i].nodes[0].ID, tiers[i+1].nodes[0].ID)
	}
}

// writeStorageAlignment emits heavy invisible edges from each virtual
// machine to storage whose normalized name matches it, keeping the pair
// horizontally adjacent.
func (g *Generator) writeStorageAlignment(b *strings.Builder, gr *graph.Graph, ids []string) {
	var machines, storage []*graph.Node
	for _, id := range ids {
		n := gr.Node(id)
		if n == nil {
			continue
		}
		switch {
		case strings.EqualFold(n.Type, "Microsoft.Compute/virtualMachines"):
			machines = append(machines, n)
		case isStorageType(n.Type):
			storage = append(storage, n)
		}
	}

	for _, vm := range machines {
		for _, st := range storage {
			if storageBelongsTo(vm.Name, st.Name) {
				fmt.Fprintf(b, "            \"%s\" -> \"%s\" [style=invis, weight=1000, minlen=1];\n", vm.ID, st.ID)
			}
		}
	}
}

// storageBelongsTo matches a storage resource to its machine by name after
// stripping separators: exact, containment, prefix, or a shared four
// character stem.
func storageBelongsTo(vmName, storageName string) bool {
	if strings.EqualFold(vmName, storageName) {
		return true
	}
	vm := normalizeName(vmName)
	st := normalizeName(storageName)
	if vm == "" || st == "" {
		return false
	}
	if vm == st || strings.Contains(st, vm) || strings.HasPrefix(st, vm) {
		return true
	}
	return len(vm) >= 4 && strings.Contains(st, vm[:4])
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

func (g *Generator) writeStandaloneNodes(b *strings.Builder, in Input) {
	clustered := make(map[string]bool)
	for _, c := range in.Clusters {
		for _, id := range c.NodeIDs {
			clustered[id] = true
		}
	}

	var internet []string
	for _, n := range in.Graph.Nodes() {
		if clustered[n.ID] {
			continue
		}
		fmt.Fprintf(b, "        %s\n", g.formatNode(n))
		if strings.EqualFold(n.Type, model.InternetGatewayType) {
			internet = append(internet, fmt.Sprintf("%q", n.ID))
		}
	}
	if len(internet) > 0 {
		fmt.Fprintf(b, "        {rank=same; %s;}\n", strings.Join(internet, "; "))
	}
}

func (g *Generator) writeEdges(b *strings.Builder, gr *graph.Graph) {
	for _, e := range gr.Edges() {
		fmt.Fprintf(b, "    %s\n", g.formatEdge(e))
	}
}

func (g *Generator) formatEdge(e graph.Edge) string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=\"%s\"", escape(e.Label)))
	}

	style := e.Style
	if style.IsZero() {
		// Unstyled edges inherit a treatment from their kind.
		if e.Kind == graph.EdgeDependency {
			style = graph.EdgeStyle{Line: graph.LineDashed, Color: "red"}
		} else {
			style = graph.EdgeStyle{Line: graph.LineSolid}
		}
	}
	if style.Line != "" {
		attrs = append(attrs, fmt.Sprintf("style=\"%s\"", style.Line))
	}
	if style.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=\"%s\"", style.Color))
	}
	if style.PenWidth > 0 {
		attrs = append(attrs, fmt.Sprintf("penwidth=\"%d\"", style.PenWidth))
	}
	if style.Weight > 0 {
		attrs = append(attrs, fmt.Sprintf("weight=\"%d\"", style.Weight))
	}
	if style.MinLen > 0 {
		attrs = append(attrs, fmt.Sprintf("minlen=\"%d\"", style.MinLen))
	}

	if len(attrs) == 0 {
		return fmt.Sprintf("\"%s\" -> \"%s\";", e.From, e.To)
	}
	return fmt.Sprintf("\"%s\" -> \"%s\" [%s];", e.From, e.To, strings.Join(attrs, ", "))
}

func (g *Generator) writeLegend(b *strings.Builder, gr *graph.Graph) {
	hasAssoc, hasDep := false, false
	for _, e := range gr.Edges() {
		switch e.Kind {
		case graph.EdgeAssociation:
			hasAssoc = true
		case graph.EdgeDependency:
			hasDep = true
		}
	}
	if !hasAssoc && !hasDep {
		return
	}

	b.WriteString("    subgraph \"cluster_legend\" {\n")
	b.WriteString("        label=\"Legend\";\n")
	b.WriteString("        style=\"filled\";\n")
	fmt.Fprintf(b, "        fillcolor=\"%s\";\n", g.palette.LegendFill)
	fmt.Fprintf(b, "        fontcolor=\"%s\";\n", g.palette.FontColor)
	if hasAssoc {
		b.WriteString("        \"legend_assoc_src\" [label=\"Resource A\", shape=box];\n")
		b.WriteString("        \"legend_assoc_dst\" [label=\"Resource B\", shape=box];\n")
		b.WriteString("        \"legend_assoc_src\" -> \"legend_assoc_dst\" [label=\"Associated\", style=solid];\n")
	}
	if hasDep {
		b.WriteString("        \"legend_dep_src\" [label=\"Resource C\", shape=box];\n")
		b.WriteString("        \"legend_dep_dst\" [label=\"Resource D\", shape=box];\n")
		b.WriteString("        \"legend_dep_src\" -> \"legend_dep_dst\" [label=\"Depends On\", style=dashed, color=red];\n")
	}
	b.WriteString("    }\n")
}

// escape prepares a string for use inside a quoted DOT attribute. Newlines
// in labels become DOT line breaks.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", `\n`)
}
