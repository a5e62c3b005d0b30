package catalog

// Destination describes a dlt destination support can be installed for.
type Destination struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Bundled marks destinations that ship inside the base dlt package.
	Bundled bool `json:"bundled"`
}

// Catalog lists the known dlt destinations.
type Catalog struct {
	Version      string        `json:"version"`
	Destinations []Destination `json:"destinations"`
}

// Known reports whether name matches a catalogued destination.
func (c *Catalog) Known(name string) bool {
	for _, d := range c.Destinations {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Names returns the destination names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Destinations))
	for i, d := range c.Destinations {
		names[i] = d.Name
	}
	return names
}
