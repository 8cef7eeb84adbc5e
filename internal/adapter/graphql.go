package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/models"
)

const componentFields = `id value encrypted encryptionAlgorithm`

const keyFields = `key { id name type { id } salt }`

// variantSelections holds the bundle selection set of every secret type.
var variantSelections = map[string]string{
	models.SecretTypeWebsitePassword: `websitePasswordComponents {
		website { ` + componentFields + ` }
		username { ` + componentFields + ` }
		password { ` + componentFields + ` }
	}`,
	models.SecretTypeCreditCard: `creditCardComponents {
		companyName { ` + componentFields + ` }
		cardNumber { ` + componentFields + ` }
		expirationMonth { ` + componentFields + ` }
		expirationYear { ` + componentFields + ` }
		securityCode { ` + componentFields + ` }
	}`,
	models.SecretTypeTextBlob: `textBlobComponents {
		textBlob { ` + componentFields + ` }
	}`,
	models.SecretTypeFiles: `filesComponents {
		files {
			fileId { ` + componentFields + ` }
			fileName { ` + componentFields + ` }
		}
	}`,
}

const generalSecretDataQuery = `
query getGeneralSecretData($id: String!) {
	ownedSecret(id: $id) {
		success
		errorMsg
		secret {
			id
			imageName
			name
			comments
			type { id name }
			` + keyFields + `
		}
	}
}`

const variantSecretDataQuery = `
query getVariantSecretData($id: String!) {
	ownedSecret(id: $id) {
		success
		errorMsg
		secret {
			id
			` + keyFields + `
			%s
		}
	}
}`

const unlockSecretMutation = `
mutation unlockSecret($unlockRequest: UnlockRequest!) {
	unlockSecret(unlockRequest: $unlockRequest) {
		success
		errorMsg
		secret {
			id
			` + keyFields + `
			%s
		}
	}
}`

const saveSecretMutation = `
mutation saveSecret($secretInput: SecretInput!) {
	saveSecret(secretInput: $secretInput) {
		success
		errorMsg
		secret {
			id
			imageName
			name
			comments
			type { id name }
			` + keyFields + `
			%s
		}
	}
}`

const deleteSecretMutation = `
mutation deleteSecret($secretId: String!) {
	deleteSecret(secretId: $secretId) {
		success
		errorMsg
	}
}`

func variantSelection(typeID string) (string, error) {
	sel, ok := variantSelections[typeID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSecretType, typeID)
	}
	return sel, nil
}

type graphQLRequest struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type ownedSecretData struct {
	OwnedSecret *models.SecretResponse `json:"ownedSecret"`
}

type unlockSecretData struct {
	UnlockSecret *models.SecretResponse `json:"unlockSecret"`
}

type saveSecretData struct {
	SaveSecret *models.SecretResponse `json:"saveSecret"`
}

type deleteSecretData struct {
	DeleteSecret *models.DeleteSecretResponse `json:"deleteSecret"`
}
