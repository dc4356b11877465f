package domain

type (
	// PackageType identifies a kind of household item carried in a move.
	PackageType string
	// OptionalServiceType identifies a priced add-on service.
	OptionalServiceType string
)

// List of package types. Adding a type here (plus a box-rate row) is all
// that is needed to carry a new kind of item.
const (
	PackageBox            PackageType = "box"
	PackageBed            PackageType = "bed"
	PackageBicycle        PackageType = "bicycle"
	PackageWashingMachine PackageType = "washing_machine"
)

// List of optional services.
const (
	ServiceWashingMachineInstall OptionalServiceType = "washing_machine_installation"
)

var allPackageTypes = [...]PackageType{
	PackageBox, PackageBed, PackageBicycle, PackageWashingMachine,
}

var allOptionalServices = [...]OptionalServiceType{
	ServiceWashingMachineInstall,
}

// PackageTypes returns every package type in its canonical order. Order
// persistence writes exactly one row per entry of this list.
func PackageTypes() []PackageType {
	out := make([]PackageType, len(allPackageTypes))
	copy(out, allPackageTypes[:])
	return out
}

// Valid checks if the PackageType is valid.
func (p PackageType) Valid() bool {
	for _, v := range allPackageTypes {
		if p == v {
			return true
		}
	}
	return false
}

// Valid checks if the OptionalServiceType is valid.
func (s OptionalServiceType) Valid() bool {
	for _, v := range allOptionalServices {
		if s == v {
			return true
		}
	}
	return false
}
