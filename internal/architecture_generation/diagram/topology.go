package diagram

// Slot marks a node label that is filled from the requirements record.
type Slot int

const (
	SlotNone Slot = iota
	SlotFrontend
	SlotBackend
	SlotDatabase
)

type Node struct {
	ID    string
	Title string
	// Tech is the fixed second label line; ignored when Slot is set.
	Tech  string
	Slot  Slot
	Class string
}

type Subgraph struct {
	Title string
	Nodes []Node
}

type Edge struct {
	From string
	To   string
}

type ClassDef struct {
	Name  string
	Style string
}

// Graph is the static diagram layout shared by every composed diagram.
type Graph struct {
	Direction string
	Subgraphs []Subgraph
	Edges     []Edge
	Classes   []ClassDef
}

// Nodes returns every node in declaration order.
func (g Graph) Nodes() []Node {
	var out []Node
	for _, sg := range g.Subgraphs {
		out = append(out, sg.Nodes...)
	}
	return out
}

var topology = Graph{
	Direction: "TB",
	Subgraphs: []Subgraph{
		{Title: "Client Layer", Nodes: []Node{
			{ID: "A", Title: "User Interface", Slot: SlotFrontend, Class: "frontend"},
			{ID: "B", Title: "Mobile App", Tech: "React Native/Flutter", Class: "frontend"},
			{ID: "C", Title: "Web App", Slot: SlotFrontend, Class: "frontend"},
		}},
		{Title: "API Gateway", Nodes: []Node{
			{ID: "D", Title: "Load Balancer", Tech: "NGINX/HAProxy", Class: "backend"},
			{ID: "E", Title: "API Gateway", Tech: "Kong/AWS API Gateway", Class: "backend"},
		}},
		{Title: "Application Layer", Nodes: []Node{
			{ID: "F", Title: "Authentication Service", Tech: "Auth0/JWT", Class: "backend"},
			{ID: "G", Title: "Business Logic", Slot: SlotBackend, Class: "backend"},
			{ID: "H", Title: "File Storage", Tech: "AWS S3/MinIO", Class: "backend"},
		}},
		{Title: "Data Layer", Nodes: []Node{
			{ID: "I", Title: "Primary Database", Slot: SlotDatabase, Class: "database"},
			{ID: "J", Title: "Cache Layer", Tech: "Redis/Memcached", Class: "database"},
			{ID: "K", Title: "Search Engine", Tech: "Elasticsearch", Class: "database"},
		}},
		{Title: "Infrastructure Layer", Nodes: []Node{
			{ID: "L", Title: "Container Orchestration", Tech: "Kubernetes/Docker Swarm", Class: "infrastructure"},
			{ID: "M", Title: "Monitoring", Tech: "Prometheus/Grafana", Class: "infrastructure"},
			{ID: "N", Title: "Message Queue", Tech: "RabbitMQ/Apache Kafka", Class: "infrastructure"},
		}},
		{Title: "External Services", Nodes: []Node{
			{ID: "O", Title: "Payment Gateway", Tech: "Stripe/PayPal", Class: "external"},
			{ID: "P", Title: "Email Service", Tech: "SendGrid/SES", Class: "external"},
			{ID: "Q", Title: "CDN", Tech: "CloudFront/Cloudflare", Class: "external"},
		}},
	},
	Edges: []Edge{
		{"A", "D"}, {"B", "D"}, {"C", "D"},
		{"D", "E"},
		{"E", "F"}, {"E", "G"},
		{"G", "I"}, {"G", "J"}, {"G", "K"}, {"G", "H"}, {"G", "N"},
		{"F", "I"},
		{"L", "G"}, {"L", "I"}, {"L", "J"},
		{"M", "L"},
		{"G", "O"}, {"G", "P"},
		{"Q", "C"}, {"Q", "B"},
	},
	Classes: []ClassDef{
		{Name: "frontend", Style: "fill:#e1f5fe,stroke:#01579b,stroke-width:2px"},
		{Name: "backend", Style: "fill:#f3e5f5,stroke:#4a148c,stroke-width:2px"},
		{Name: "database", Style: "fill:#e8f5e8,stroke:#1b5e20,stroke-width:2px"},
		{Name: "infrastructure", Style: "fill:#fff3e0,stroke:#e65100,stroke-width:2px"},
		{Name: "external", Style: "fill:#fce4ec,stroke:#880e4f,stroke-width:2px"},
	},
}

// Topology returns a copy of the fixed diagram layout.
func Topology() Graph {
	g := Graph{
		Direction: topology.Direction,
		Subgraphs: make([]Subgraph, len(topology.Subgraphs)),
		Edges:     append([]Edge(nil), topology.Edges...),
		Classes:   append([]ClassDef(nil), topology.Classes...),
	}
	for i, sg := range topology.Subgraphs {
		g.Subgraphs[i] = Subgraph{Title: sg.Title, Nodes: append([]Node(nil), sg.Nodes...)}
	}
	return g
}
