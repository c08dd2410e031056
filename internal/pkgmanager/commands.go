package pkgmanager

// PackageManager identifies a supported JavaScript package manager.
type PackageManager string

// Supported package managers.
const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// Default is returned whenever no signal identifies a manager.
const Default = NPM

// All lists the supported managers in menu order.
var All = []PackageManager{NPM, Yarn, PNPM, Bun}

// commandSet holds the canonical CLI invocations for one manager.
type commandSet struct {
	install string
	run     string
	add     string
	addDev  string
	exec    string
}

var commandSets = map[PackageManager]commandSet{
	NPM: {
		install: "npm install",
		run:     "npm run",
		add:     "npm install",
		addDev:  "npm install --save-dev",
		exec:    "npx",
	},
	Yarn: {
		install: "yarn install",
		run:     "yarn run",
		add:     "yarn add",
		addDev:  "yarn add --dev",
		exec:    "yarn dlx",
	},
	PNPM: {
		install: "pnpm install",
		run:     "pnpm run",
		add:     "pnpm add",
		addDev:  "pnpm add --save-dev",
		exec:    "pnpm dlx",
	},
	Bun: {
		install: "bun install",
		run:     "bun run",
		add:     "bun add",
		addDev:  "bun add --dev",
		exec:    "bunx",
	},
}

// Parse converts a name into a PackageManager. The boolean reports whether
// the name is one of the supported managers.
func Parse(name string) (PackageManager, bool) {
	pm := PackageManager(name)
	_, ok := commandSets[pm]
	return pm, ok
}

// Valid reports whether pm is a supported manager.
func (pm PackageManager) Valid() bool {
	_, ok := commandSets[pm]
	return ok
}

func (pm PackageManager) String() string { return string(pm) }

// commands returns the command set for pm, or npm's for unknown values.
func commands(pm PackageManager) commandSet {
	if set, ok := commandSets[pm]; ok {
		return set
	}
	return commandSets[Default]
}

// InstallCommand returns the command that installs all dependencies.
func InstallCommand(pm PackageManager) string {
	return commands(pm).install
}

// RunCommand returns the command that runs a package.json script. An empty
// script yields the bare run prefix.
func RunCommand(pm PackageManager, script string) string {
	base := commands(pm).run
	if script == "" {
		return base
	}
	return base + " " + script
}

// AddCommand returns the command prefix for adding a dependency, as a dev
// dependency when dev is true.
func AddCommand(pm PackageManager, dev bool) string {
	if dev {
		return commands(pm).addDev
	}
	return commands(pm).add
}

// ExecCommand returns the one-off package executor (npx and friends).
func ExecCommand(pm PackageManager) string {
	return commands(pm).exec
}
