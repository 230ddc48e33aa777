package processor

import (
	"context"
	"fmt"

	"vinoteca-server/internal/assistant/provider"
	"vinoteca-server/internal/store"

	"github.com/google/uuid"
)

// ClientAction instructs a separate client-side component to change
// local state. The gateway never mutates cart state itself: the three
// cart tools only validate inputs and hand back one of these markers.
type ClientAction struct {
	Action   string  `json:"action"`
	WineID   string  `json:"wine_id,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Message  string  `json:"message"`
}

const (
	ActionAddToCart      = "add_to_cart"
	ActionGetCart        = "get_cart"
	ActionRemoveFromCart = "remove_from_cart"
)

// toolManifest is the fixed capability list sent to every provider.
// It is static for the lifetime of the service and not user-specific.
// Descriptions stay in French: the storefront assistant speaks French.
var toolManifest = []provider.Tool{
	{
		Name:        "search_wines",
		Description: "Rechercher des vins par nom, type, région ou catégorie",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query":  map[string]interface{}{"type": "string", "description": "Terme de recherche"},
				"type":   map[string]interface{}{"type": "string", "description": "Type de vin (rouge, blanc, rosé, champagne)"},
				"region": map[string]interface{}{"type": "string", "description": "Région du vin"},
			},
		},
	},
	{
		Name:        "get_wine_details",
		Description: "Obtenir les détails complets d'un vin spécifique",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"wine_id": map[string]interface{}{"type": "string", "description": "ID du vin"},
			},
			"required": []string{"wine_id"},
		},
	},
	{
		Name:        "add_to_cart",
		Description: "Ajouter un vin au panier",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"wine_id":  map[string]interface{}{"type": "string", "description": "ID du vin"},
				"quantity": map[string]interface{}{"type": "number", "description": "Quantité à ajouter"},
			},
			"required": []string{"wine_id", "quantity"},
		},
	},
	{
		Name:        "get_cart",
		Description: "Voir le contenu actuel du panier",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "remove_from_cart",
		Description: "Retirer un vin du panier",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"wine_id": map[string]interface{}{"type": "string", "description": "ID du vin à retirer"},
			},
			"required": []string{"wine_id"},
		},
	},
	{
		Name:        "get_orders",
		Description: "Consulter l'historique des commandes",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_order_details",
		Description: "Obtenir les détails d'une commande spécifique",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"order_id": map[string]interface{}{"type": "string", "description": "ID de la commande"},
			},
			"required": []string{"order_id"},
		},
	},
	{
		Name:        "get_profile",
		Description: "Consulter les informations du profil utilisateur",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "update_profile",
		Description: "Modifier les informations du profil utilisateur",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name":    map[string]interface{}{"type": "string", "description": "Nom"},
				"phone":   map[string]interface{}{"type": "string", "description": "Téléphone"},
				"address": map[string]interface{}{"type": "string", "description": "Adresse"},
			},
		},
	},
	{
		Name:        "get_payment_methods",
		Description: "Consulter les moyens de paiement enregistrés",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}

// ToolManifest returns the static capability list.
func ToolManifest() []provider.Tool {
	return toolManifest
}

// toolHandler executes one validated tool invocation for a user.
type toolHandler func(ctx context.Context, userID uuid.UUID, args map[string]interface{}) (interface{}, error)

// buildToolHandlers returns the dispatch table. Every manifest entry
// must have a handler and vice versa; New verifies the parity at
// construction time so a drift fails at startup, not at request time.
func (p *AssistantProcessor) buildToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"search_wines":        p.toolSearchWines,
		"get_wine_details":    p.toolGetWineDetails,
		"add_to_cart":         p.toolAddToCart,
		"get_cart":            p.toolGetCart,
		"remove_from_cart":    p.toolRemoveFromCart,
		"get_orders":          p.toolGetOrders,
		"get_order_details":   p.toolGetOrderDetails,
		"get_profile":         p.toolGetProfile,
		"update_profile":      p.toolUpdateProfile,
		"get_payment_methods": p.toolGetPaymentMethods,
	}
}

func verifyToolHandlers(handlers map[string]toolHandler) {
	byName := make(map[string]bool, len(toolManifest))
	for _, tool := range toolManifest {
		byName[tool.Name] = true
		if _, ok := handlers[tool.Name]; !ok {
			panic(fmt.Sprintf("tool %q is in the manifest but has no handler", tool.Name))
		}
	}
	for name := range handlers {
		if !byName[name] {
			panic(fmt.Sprintf("tool handler %q has no manifest entry", name))
		}
	}
}

func stringArg(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func numberArg(args map[string]interface{}, key string) (float64, bool) {
	value, ok := args[key].(float64)
	return value, ok
}

func uuidArg(args map[string]interface{}, key string) (uuid.UUID, error) {
	raw := stringArg(args, key)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid ID", key)
	}
	return id, nil
}

func (p *AssistantProcessor) toolSearchWines(ctx context.Context, _ uuid.UUID, args map[string]interface{}) (interface{}, error) {
	wines, err := p.store.SearchWines(ctx, store.SearchWinesParams{
		Query:  stringArg(args, "query"),
		Type:   stringArg(args, "type"),
		Region: stringArg(args, "region"),
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"wines": wines}, nil
}

func (p *AssistantProcessor) toolGetWineDetails(ctx context.Context, _ uuid.UUID, args map[string]interface{}) (interface{}, error) {
	wineID, err := uuidArg(args, "wine_id")
	if err != nil {
		return nil, err
	}
	wine, err := p.store.GetWineByID(ctx, wineID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"wine": wine}, nil
}

func (p *AssistantProcessor) toolAddToCart(_ context.Context, _ uuid.UUID, args map[string]interface{}) (interface{}, error) {
	wineID := stringArg(args, "wine_id")
	if wineID == "" {
		return nil, fmt.Errorf("wine_id is required")
	}
	quantity, ok := numberArg(args, "quantity")
	if !ok || quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive number")
	}
	return ClientAction{
		Action:   ActionAddToCart,
		WineID:   wineID,
		Quantity: quantity,
		Message:  "Vin ajouté au panier avec succès",
	}, nil
}

func (p *AssistantProcessor) toolGetCart(_ context.Context, _ uuid.UUID, _ map[string]interface{}) (interface{}, error) {
	return ClientAction{
		Action:  ActionGetCart,
		Message: "Veuillez consulter votre panier",
	}, nil
}

func (p *AssistantProcessor) toolRemoveFromCart(_ context.Context, _ uuid.UUID, args map[string]interface{}) (interface{}, error) {
	wineID := stringArg(args, "wine_id")
	if wineID == "" {
		return nil, fmt.Errorf("wine_id is required")
	}
	return ClientAction{
		Action:  ActionRemoveFromCart,
		WineID:  wineID,
		Message: "Vin retiré du panier",
	}, nil
}

func (p *AssistantProcessor) toolGetOrders(ctx context.Context, userID uuid.UUID, _ map[string]interface{}) (interface{}, error) {
	orders, err := p.store.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"orders": orders}, nil
}

func (p *AssistantProcessor) toolGetOrderDetails(ctx context.Context, userID uuid.UUID, args map[string]interface{}) (interface{}, error) {
	orderID, err := uuidArg(args, "order_id")
	if err != nil {
		return nil, err
	}
	order, err := p.store.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"order": order}, nil
}

func (p *AssistantProcessor) toolGetProfile(ctx context.Context, userID uuid.UUID, _ map[string]interface{}) (interface{}, error) {
	profile, err := p.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"profile": profile}, nil
}

func (p *AssistantProcessor) toolUpdateProfile(ctx context.Context, userID uuid.UUID, args map[string]interface{}) (interface{}, error) {
	params := store.UpdateProfileParams{}
	if name := stringArg(args, "name"); name != "" {
		params.Name = &name
	}
	if phone := stringArg(args, "phone"); phone != "" {
		params.Phone = &phone
	}
	if address := stringArg(args, "address"); address != "" {
		params.Address = &address
	}
	profile, err := p.store.UpdateProfileByUserID(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"profile": profile, "message": "Profil mis à jour avec succès"}, nil
}

func (p *AssistantProcessor) toolGetPaymentMethods(ctx context.Context, userID uuid.UUID, _ map[string]interface{}) (interface{}, error) {
	methods, err := p.store.GetPaymentMethodsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"payment_methods": methods}, nil
}
