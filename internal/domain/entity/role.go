package entity

// Permission capacidad puntual del back-office. Conjunto finito y enumerado;
// los roles reciben un juego por defecto de la tabla estática DefaultPermissions.
type Permission string

const (
	PermAccountRead     Permission = "ACCOUNT_READ"
	PermAccountWrite    Permission = "ACCOUNT_WRITE"
	PermProductRead     Permission = "PRODUCT_READ"
	PermProductWrite    Permission = "PRODUCT_WRITE"
	PermPlateRead       Permission = "PLATE_READ"
	PermPlateWrite      Permission = "PLATE_WRITE"
	PermWorkOrderRead   Permission = "WORK_ORDER_READ"
	PermWorkOrderWrite  Permission = "WORK_ORDER_WRITE"
	PermWorkOrderClose  Permission = "WORK_ORDER_CLOSE"
	PermDeliveryRead    Permission = "DELIVERY_READ"
	PermDeliveryWrite   Permission = "DELIVERY_WRITE"
	PermStockRead       Permission = "STOCK_READ"
	PermStockAdjust     Permission = "STOCK_ADJUST"
	PermQuoteRead       Permission = "QUOTE_READ"
	PermQuoteWrite      Permission = "QUOTE_WRITE"
	PermUserManage      Permission = "USER_MANAGE"
)

// DefaultPermissions asignación estática de permisos por rol.
var DefaultPermissions = map[string][]Permission{
	RoleAdmin: {
		PermAccountRead, PermAccountWrite,
		PermProductRead, PermProductWrite,
		PermPlateRead, PermPlateWrite,
		PermWorkOrderRead, PermWorkOrderWrite, PermWorkOrderClose,
		PermDeliveryRead, PermDeliveryWrite,
		PermStockRead, PermStockAdjust,
		PermQuoteRead, PermQuoteWrite,
		PermUserManage,
	},
	RoleManager: {
		PermAccountRead, PermAccountWrite,
		PermProductRead, PermProductWrite,
		PermPlateRead, PermPlateWrite,
		PermWorkOrderRead, PermWorkOrderWrite, PermWorkOrderClose,
		PermDeliveryRead, PermDeliveryWrite,
		PermStockRead, PermStockAdjust,
		PermQuoteRead, PermQuoteWrite,
	},
	RoleOperator: {
		PermAccountRead,
		PermProductRead,
		PermPlateRead,
		PermWorkOrderRead, PermWorkOrderClose,
		PermDeliveryRead,
		PermStockRead,
	},
}

// HasPermission indica si el rol incluye la capacidad pedida.
func HasPermission(role string, p Permission) bool {
	for _, granted := range DefaultPermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}
