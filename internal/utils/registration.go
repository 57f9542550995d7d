package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/yukikurage/erp-api/internal/constants"
)

// GenerateRegistrationNumber returns a six-digit number used to name newly
// provisioned organizations.
func GenerateRegistrationNumber() (int, error) {
	span := big.NewInt(constants.RegistrationNumberMax - constants.RegistrationNumberMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return constants.RegistrationNumberMin + int(n.Int64()), nil
}

// OrganizationIdentity derives the display name and slug for a registration number.
func OrganizationIdentity(regNum int) (name, slug string) {
	return fmt.Sprintf("ERP %d", regNum), fmt.Sprintf("erp-%d", regNum)
}

// GenerateOrganizationIdentity returns a fresh display name and slug pair.
func GenerateOrganizationIdentity() (name, slug string, err error) {
	regNum, err := GenerateRegistrationNumber()
	if err != nil {
		return "", "", err
	}
	name, slug = OrganizationIdentity(regNum)
	return name, slug, nil
}
