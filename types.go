package gateway

import "encoding/json"

// DeploymentStatus reflects the lifecycle state of a leased resource as
// reported to the leasing subsystem.
type DeploymentStatus string

const (
	StatusDeploying DeploymentStatus = "Deploying"
	StatusRunning   DeploymentStatus = "Running"
	StatusClosed    DeploymentStatus = "Closed"
	StatusFailed    DeploymentStatus = "Failed"
	StatusUnknown   DeploymentStatus = "Unknown"
)

// ResponseCode classifies the outcome of a prediction request towards the
// caller. Request-path failures are always reported as an internal error;
// the downstream status code is never exposed upstream.
type ResponseCode string

const (
	CodeOK                  ResponseCode = "OK"
	CodeInternalServerError ResponseCode = "INTERNAL_SERVER_ERROR"
)

// Agreement is the leasing relationship between a consumer and a specific
// offer of this provider. It is owned by the leasing subsystem and only read
// here.
type Agreement struct {
	ID              string `json:"id"`
	OfferID         string `json:"offerId"`
	ConsumerAddress string `json:"consumerAddress"`
	ProviderAddress string `json:"providerAddress"`
}

// Offer is a provider-published, purchasable configuration of the service.
// Details is the raw offer detail blob; when structured it contains a
// `params` mapping with the purchased prediction allowance.
type Offer struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Details json.RawMessage `json:"details"`
}

// Resource is a concrete leased instance created under an agreement.
type Resource struct {
	ID               string           `json:"id"`
	AgreementID      string           `json:"agreementId"`
	DeploymentStatus DeploymentStatus `json:"deploymentStatus"`
	Details          ResourceDetails  `json:"details"`
}

// ResourceDetails is the detail blob the provider attaches to a resource at
// creation time. The allowance/count invariant is maintained by the
// surrounding lifecycle logic, the gateway only reports the counters.
type ResourceDetails struct {
	Status               DeploymentStatus `json:"deploymentStatus"`
	PredictionsAllowance int64            `json:"Predictions_Allowance_Count"`
	PredictionsCount     int64            `json:"Predictions_Count"`
}

// PredictionResponse is the stable result contract returned to the leasing
// subsystem for a prediction request.
type PredictionResponse struct {
	Predictions string       `json:"predictions"`
	Code        ResponseCode `json:"responseCode"`
}
