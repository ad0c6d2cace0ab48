package capability

// Semantic capability names. Reports and package-name maps key off these.
const (
	Git     = "git"
	Curl    = "curl"
	GCC     = "gcc"
	Make    = "make"
	OpenSSL = "openssl"
	Protoc  = "protoc"

	Rust    = "rust"
	Node    = "node"
	Flutter = "flutter"
	Go      = "go"
	Docker  = "docker"
)

// catalog is the fixed, ordered capability list. Order matters: the report
// preserves it, and generic packages must precede toolchains because several
// bootstrap scripts need a compiler, curl, and TLS headers on PATH.
var catalog = []Capability{
	{Name: Git, Command: "git", Required: true, Kind: KindPackage},
	{Name: Curl, Command: "curl", Required: true, Kind: KindPackage},
	{Name: GCC, Command: "gcc", Required: true, Kind: KindPackage},
	{Name: Make, Command: "make", Required: true, Kind: KindPackage},
	{Name: OpenSSL, Command: "openssl", Required: true, Kind: KindPackage},
	{Name: Protoc, Command: "protoc", Required: false, Kind: KindPackage},

	{Name: Rust, Command: "rustup", Required: false, Kind: KindToolchain},
	{Name: Node, Command: "node", Required: false, Kind: KindToolchain},
	{Name: Flutter, Command: "flutter", Required: false, Kind: KindToolchain},
	{Name: Go, Command: "go", Required: false, Kind: KindToolchain},
	{Name: Docker, Command: "docker", Required: false, Kind: KindToolchain},
}

// Catalog returns a copy of the full ordered catalog.
func Catalog() []Capability {
	out := make([]Capability, len(catalog))
	copy(out, catalog)
	return out
}

// Generic returns the capabilities installed through the package manager,
// in catalog order.
func Generic() []Capability {
	return filter(KindPackage)
}

// Toolchains returns the capabilities with dedicated bootstrap strategies,
// in catalog order.
func Toolchains() []Capability {
	return filter(KindToolchain)
}

// Lookup returns the capability with the given semantic name.
func Lookup(name string) (Capability, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Capability{}, false
}

func filter(kind Kind) []Capability {
	out := make([]Capability, 0, len(catalog))
	for _, c := range catalog {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
