package module

import (
	inddom "econlens/internal/services/api/indicators/domain"
)

// Ports exposes the indicators service to other modules
type Ports struct {
	Service inddom.ServicePort
	Ready   inddom.Ready
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
