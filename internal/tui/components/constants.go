package components

// Table column widths. The widest text column takes whatever is left.
const (
	userNameWidth    = 22
	userRoleWidth    = 12
	userPhoneWidth   = 14
	userRatingWidth  = 7
	projTitleWidth   = 26
	projOwnerWidth   = 20
	projPriceWidth   = 9
	projStatusWidth  = 10
	minFlexWidth     = 12
	tablePaddingCols = 4
)
