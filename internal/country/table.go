package country

// table is keyed by ISO 3166-1 alpha-2 code (plus EU).
var table = map[string]Data{
	"AD": {Name: "Andorra", Title: "flag for Andorra", Emoji: "🇦🇩", Unicode: "U+1F1E6 U+1F1E9"},
	"AE": {Name: "United Arab Emirates", Title: "flag for United Arab Emirates", Emoji: "🇦🇪", Unicode: "U+1F1E6 U+1F1EA"},
	"AF": {Name: "Afghanistan", Title: "flag for Afghanistan", Emoji: "🇦🇫", Unicode: "U+1F1E6 U+1F1EB"},
	"AG": {Name: "Antigua and Barbuda", Title: "flag for Antigua and Barbuda", Emoji: "🇦🇬", Unicode: "U+1F1E6 U+1F1EC"},
	"AI": {Name: "Anguilla", Title: "flag for Anguilla", Emoji: "🇦🇮", Unicode: "U+1F1E6 U+1F1EE"},
	"AL": {Name: "Albania", Title: "flag for Albania", Emoji: "🇦🇱", Unicode: "U+1F1E6 U+1F1F1"},
	"AM": {Name: "Armenia", Title: "flag for Armenia", Emoji: "🇦🇲", Unicode: "U+1F1E6 U+1F1F2"},
	"AO": {Name: "Angola", Title: "flag for Angola", Emoji: "🇦🇴", Unicode: "U+1F1E6 U+1F1F4"},
	"AQ": {Name: "Antarctica", Title: "flag for Antarctica", Emoji: "🇦🇶", Unicode: "U+1F1E6 U+1F1F6"},
	"AR": {Name: "Argentina", Title: "flag for Argentina", Emoji: "🇦🇷", Unicode: "U+1F1E6 U+1F1F7"},
	"AS": {Name: "American Samoa", Title: "flag for American Samoa", Emoji: "🇦🇸", Unicode: "U+1F1E6 U+1F1F8"},
	"AT": {Name: "Austria", Title: "flag for Austria", Emoji: "🇦🇹", Unicode: "U+1F1E6 U+1F1F9"},
	"AU": {Name: "Australia", Title: "flag for Australia", Emoji: "🇦🇺", Unicode: "U+1F1E6 U+1F1FA"},
	"AW": {Name: "Aruba", Title: "flag for Aruba", Emoji: "🇦🇼", Unicode: "U+1F1E6 U+1F1FC"},
	"AX": {Name: "Åland Islands", Title: "flag for Åland Islands", Emoji: "🇦🇽", Unicode: "U+1F1E6 U+1F1FD"},
	"AZ": {Name: "Azerbaijan", Title: "flag for Azerbaijan", Emoji: "🇦🇿", Unicode: "U+1F1E6 U+1F1FF"},
	"BA": {Name: "Bosnia and Herzegovina", Title: "flag for Bosnia and Herzegovina", Emoji: "🇧🇦", Unicode: "U+1F1E7 U+1F1E6"},
	"BB": {Name: "Barbados", Title: "flag for Barbados", Emoji: "🇧🇧", Unicode: "U+1F1E7 U+1F1E7"},
	"BD": {Name: "Bangladesh", Title: "flag for Bangladesh", Emoji: "🇧🇩", Unicode: "U+1F1E7 U+1F1E9"},
	"BE": {Name: "Belgium", Title: "flag for Belgium", Emoji: "🇧🇪", Unicode: "U+1F1E7 U+1F1EA"},
	"BF": {Name: "Burkina Faso", Title: "flag for Burkina Faso", Emoji: "🇧🇫", Unicode: "U+1F1E7 U+1F1EB"},
	"BG": {Name: "Bulgaria", Title: "flag for Bulgaria", Emoji: "🇧🇬", Unicode: "U+1F1E7 U+1F1EC"},
	"BH": {Name: "Bahrain", Title: "flag for Bahrain", Emoji: "🇧🇭", Unicode: "U+1F1E7 U+1F1ED"},
	"BI": {Name: "Burundi", Title: "flag for Burundi", Emoji: "🇧🇮", Unicode: "U+1F1E7 U+1F1EE"},
	"BJ": {Name: "Benin", Title: "flag for Benin", Emoji: "🇧🇯", Unicode: "U+1F1E7 U+1F1EF"},
	"BL": {Name: "Saint Barthélemy", Title: "flag for Saint Barthélemy", Emoji: "🇧🇱", Unicode: "U+1F1E7 U+1F1F1"},
	"BM": {Name: "Bermuda", Title: "flag for Bermuda", Emoji: "🇧🇲", Unicode: "U+1F1E7 U+1F1F2"},
	"BN": {Name: "Brunei Darussalam", Title: "flag for Brunei Darussalam", Emoji: "🇧🇳", Unicode: "U+1F1E7 U+1F1F3"},
	"BO": {Name: "Bolivia", Title: "flag for Bolivia", Emoji: "🇧🇴", Unicode: "U+1F1E7 U+1F1F4"},
	"BQ": {Name: "Bonaire, Sint Eustatius and Saba", Title: "flag for Bonaire, Sint Eustatius and Saba", Emoji: "🇧🇶", Unicode: "U+1F1E7 U+1F1F6"},
	"BR": {Name: "Brazil", Title: "flag for Brazil", Emoji: "🇧🇷", Unicode: "U+1F1E7 U+1F1F7"},
	"BS": {Name: "Bahamas", Title: "flag for Bahamas", Emoji: "🇧🇸", Unicode: "U+1F1E7 U+1F1F8"},
	"BT": {Name: "Bhutan", Title: "flag for Bhutan", Emoji: "🇧🇹", Unicode: "U+1F1E7 U+1F1F9"},
	"BV": {Name: "Bouvet Island", Title: "flag for Bouvet Island", Emoji: "🇧🇻", Unicode: "U+1F1E7 U+1F1FB"},
	"BW": {Name: "Botswana", Title: "flag for Botswana", Emoji: "🇧🇼", Unicode: "U+1F1E7 U+1F1FC"},
	"BY": {Name: "Belarus", Title: "flag for Belarus", Emoji: "🇧🇾", Unicode: "U+1F1E7 U+1F1FE"},
	"BZ": {Name: "Belize", Title: "flag for Belize", Emoji: "🇧🇿", Unicode: "U+1F1E7 U+1F1FF"},
	"CA": {Name: "Canada", Title: "flag for Canada", Emoji: "🇨🇦", Unicode: "U+1F1E8 U+1F1E6"},
	"CC": {Name: "Cocos (Keeling) Islands", Title: "flag for Cocos (Keeling) Islands", Emoji: "🇨🇨", Unicode: "U+1F1E8 U+1F1E8"},
	"CD": {Name: "Congo", Title: "flag for Congo", Emoji: "🇨🇩", Unicode: "U+1F1E8 U+1F1E9"},
	"CF": {Name: "Central African Republic", Title: "flag for Central African Republic", Emoji: "🇨🇫", Unicode: "U+1F1E8 U+1F1EB"},
	"CG": {Name: "Congo", Title: "flag for Congo", Emoji: "🇨🇬", Unicode: "U+1F1E8 U+1F1EC"},
	"CH": {Name: "Switzerland", Title: "flag for Switzerland", Emoji: "🇨🇭", Unicode: "U+1F1E8 U+1F1ED"},
	"CI": {Name: "Côte D'Ivoire", Title: "flag for Côte D'Ivoire", Emoji: "🇨🇮", Unicode: "U+1F1E8 U+1F1EE"},
	"CK": {Name: "Cook Islands", Title: "flag for Cook Islands", Emoji: "🇨🇰", Unicode: "U+1F1E8 U+1F1F0"},
	"CL": {Name: "Chile", Title: "flag for Chile", Emoji: "🇨🇱", Unicode: "U+1F1E8 U+1F1F1"},
	"CM": {Name: "Cameroon", Title: "flag for Cameroon", Emoji: "🇨🇲", Unicode: "U+1F1E8 U+1F1F2"},
	"CN": {Name: "China", Title: "flag for China", Emoji: "🇨🇳", Unicode: "U+1F1E8 U+1F1F3"},
	"CO": {Name: "Colombia", Title: "flag for Colombia", Emoji: "🇨🇴", Unicode: "U+1F1E8 U+1F1F4"},
	"CR": {Name: "Costa Rica", Title: "flag for Costa Rica", Emoji: "🇨🇷", Unicode: "U+1F1E8 U+1F1F7"},
	"CU": {Name: "Cuba", Title: "flag for Cuba", Emoji: "🇨🇺", Unicode: "U+1F1E8 U+1F1FA"},
	"CV": {Name: "Cape Verde", Title: "flag for Cape Verde", Emoji: "🇨🇻", Unicode: "U+1F1E8 U+1F1FB"},
	"CW": {Name: "Curaçao", Title: "flag for Curaçao", Emoji: "🇨🇼", Unicode: "U+1F1E8 U+1F1FC"},
	"CX": {Name: "Christmas Island", Title: "flag for Christmas Island", Emoji: "🇨🇽", Unicode: "U+1F1E8 U+1F1FD"},
	"CY": {Name: "Cyprus", Title: "flag for Cyprus", Emoji: "🇨🇾", Unicode: "U+1F1E8 U+1F1FE"},
	"CZ": {Name: "Czech Republic", Title: "flag for Czech Republic", Emoji: "🇨🇿", Unicode: "U+1F1E8 U+1F1FF"},
	"DE": {Name: "Germany", Title: "flag for Germany", Emoji: "🇩🇪", Unicode: "U+1F1E9 U+1F1EA"},
	"DJ": {Name: "Djibouti", Title: "flag for Djibouti", Emoji: "🇩🇯", Unicode: "U+1F1E9 U+1F1EF"},
	"DK": {Name: "Denmark", Title: "flag for Denmark", Emoji: "🇩🇰", Unicode: "U+1F1E9 U+1F1F0"},
	"DM": {Name: "Dominica", Title: "flag for Dominica", Emoji: "🇩🇲", Unicode: "U+1F1E9 U+1F1F2"},
	"DO": {Name: "Dominican Republic", Title: "flag for Dominican Republic", Emoji: "🇩🇴", Unicode: "U+1F1E9 U+1F1F4"},
	"DZ": {Name: "Algeria", Title: "flag for Algeria", Emoji: "🇩🇿", Unicode: "U+1F1E9 U+1F1FF"},
	"EC": {Name: "Ecuador", Title: "flag for Ecuador", Emoji: "🇪🇨", Unicode: "U+1F1EA U+1F1E8"},
	"EE": {Name: "Estonia", Title: "flag for Estonia", Emoji: "🇪🇪", Unicode: "U+1F1EA U+1F1EA"},
	"EG": {Name: "Egypt", Title: "flag for Egypt", Emoji: "🇪🇬", Unicode: "U+1F1EA U+1F1EC"},
	"EH": {Name: "Western Sahara", Title: "flag for Western Sahara", Emoji: "🇪🇭", Unicode: "U+1F1EA U+1F1ED"},
	"ER": {Name: "Eritrea", Title: "flag for Eritrea", Emoji: "🇪🇷", Unicode: "U+1F1EA U+1F1F7"},
	"ES": {Name: "Spain", Title: "flag for Spain", Emoji: "🇪🇸", Unicode: "U+1F1EA U+1F1F8"},
	"ET": {Name: "Ethiopia", Title: "flag for Ethiopia", Emoji: "🇪🇹", Unicode: "U+1F1EA U+1F1F9"},
	"EU": {Name: "European Union", Title: "flag for European Union", Emoji: "🇪🇺", Unicode: "U+1F1EA U+1F1FA"},
	"FI": {Name: "Finland", Title: "flag for Finland", Emoji: "🇫🇮", Unicode: "U+1F1EB U+1F1EE"},
	"FJ": {Name: "Fiji", Title: "flag for Fiji", Emoji: "🇫🇯", Unicode: "U+1F1EB U+1F1EF"},
	"FK": {Name: "Falkland Islands (Malvinas)", Title: "flag for Falkland Islands (Malvinas)", Emoji: "🇫🇰", Unicode: "U+1F1EB U+1F1F0"},
	"FM": {Name: "Micronesia", Title: "flag for Micronesia", Emoji: "🇫🇲", Unicode: "U+1F1EB U+1F1F2"},
	"FO": {Name: "Faroe Islands", Title: "flag for Faroe Islands", Emoji: "🇫🇴", Unicode: "U+1F1EB U+1F1F4"},
	"FR": {Name: "France", Title: "flag for France", Emoji: "🇫🇷", Unicode: "U+1F1EB U+1F1F7"},
	"GA": {Name: "Gabon", Title: "flag for Gabon", Emoji: "🇬🇦", Unicode: "U+1F1EC U+1F1E6"},
	"GB": {Name: "United Kingdom", Title: "flag for United Kingdom", Emoji: "🇬🇧", Unicode: "U+1F1EC U+1F1E7"},
	"GD": {Name: "Grenada", Title: "flag for Grenada", Emoji: "🇬🇩", Unicode: "U+1F1EC U+1F1E9"},
	"GE": {Name: "Georgia", Title: "flag for Georgia", Emoji: "🇬🇪", Unicode: "U+1F1EC U+1F1EA"},
	"GF": {Name: "French Guiana", Title: "flag for French Guiana", Emoji: "🇬🇫", Unicode: "U+1F1EC U+1F1EB"},
	"GG": {Name: "Guernsey", Title: "flag for Guernsey", Emoji: "🇬🇬", Unicode: "U+1F1EC U+1F1EC"},
	"GH": {Name: "Ghana", Title: "flag for Ghana", Emoji: "🇬🇭", Unicode: "U+1F1EC U+1F1ED"},
	"GI": {Name: "Gibraltar", Title: "flag for Gibraltar", Emoji: "🇬🇮", Unicode: "U+1F1EC U+1F1EE"},
	"GL": {Name: "Greenland", Title: "flag for Greenland", Emoji: "🇬🇱", Unicode: "U+1F1EC U+1F1F1"},
	"GM": {Name: "Gambia", Title: "flag for Gambia", Emoji: "🇬🇲", Unicode: "U+1F1EC U+1F1F2"},
	"GN": {Name: "Guinea", Title: "flag for Guinea", Emoji: "🇬🇳", Unicode: "U+1F1EC U+1F1F3"},
	"GP": {Name: "Guadeloupe", Title: "flag for Guadeloupe", Emoji: "🇬🇵", Unicode: "U+1F1EC U+1F1F5"},
	"GQ": {Name: "Equatorial Guinea", Title: "flag for Equatorial Guinea", Emoji: "🇬🇶", Unicode: "U+1F1EC U+1F1F6"},
	"GR": {Name: "Greece", Title: "flag for Greece", Emoji: "🇬🇷", Unicode: "U+1F1EC U+1F1F7"},
	"GS": {Name: "South Georgia", Title: "flag for South Georgia", Emoji: "🇬🇸", Unicode: "U+1F1EC U+1F1F8"},
	"GT": {Name: "Guatemala", Title: "flag for Guatemala", Emoji: "🇬🇹", Unicode: "U+1F1EC U+1F1F9"},
	"GU": {Name: "Guam", Title: "flag for Guam", Emoji: "🇬🇺", Unicode: "U+1F1EC U+1F1FA"},
	"GW": {Name: "Guinea-Bissau", Title: "flag for Guinea-Bissau", Emoji: "🇬🇼", Unicode: "U+1F1EC U+1F1FC"},
	"GY": {Name: "Guyana", Title: "flag for Guyana", Emoji: "🇬🇾", Unicode: "U+1F1EC U+1F1FE"},
	"HK": {Name: "Hong Kong", Title: "flag for Hong Kong", Emoji: "🇭🇰", Unicode: "U+1F1ED U+1F1F0"},
	"HM": {Name: "Heard Island and Mcdonald Islands", Title: "flag for Heard Island and Mcdonald Islands", Emoji: "🇭🇲", Unicode: "U+1F1ED U+1F1F2"},
	"HN": {Name: "Honduras", Title: "flag for Honduras", Emoji: "🇭🇳", Unicode: "U+1F1ED U+1F1F3"},
	"HR": {Name: "Croatia", Title: "flag for Croatia", Emoji: "🇭🇷", Unicode: "U+1F1ED U+1F1F7"},
	"HT": {Name: "Haiti", Title: "flag for Haiti", Emoji: "🇭🇹", Unicode: "U+1F1ED U+1F1F9"},
	"HU": {Name: "Hungary", Title: "flag for Hungary", Emoji: "🇭🇺", Unicode: "U+1F1ED U+1F1FA"},
	"ID": {Name: "Indonesia", Title: "flag for Indonesia", Emoji: "🇮🇩", Unicode: "U+1F1EE U+1F1E9"},
	"IE": {Name: "Ireland", Title: "flag for Ireland", Emoji: "🇮🇪", Unicode: "U+1F1EE U+1F1EA"},
	"IL": {Name: "Israel", Title: "flag for Israel", Emoji: "🇮🇱", Unicode: "U+1F1EE U+1F1F1"},
	"IM": {Name: "Isle of Man", Title: "flag for Isle of Man", Emoji: "🇮🇲", Unicode: "U+1F1EE U+1F1F2"},
	"IN": {Name: "India", Title: "flag for India", Emoji: "🇮🇳", Unicode: "U+1F1EE U+1F1F3"},
	"IO": {Name: "British Indian Ocean Territory", Title: "flag for British Indian Ocean Territory", Emoji: "🇮🇴", Unicode: "U+1F1EE U+1F1F4"},
	"IQ": {Name: "Iraq", Title: "flag for Iraq", Emoji: "🇮🇶", Unicode: "U+1F1EE U+1F1F6"},
	"IR": {Name: "Iran", Title: "flag for Iran", Emoji: "🇮🇷", Unicode: "U+1F1EE U+1F1F7"},
	"IS": {Name: "Iceland", Title: "flag for Iceland", Emoji: "🇮🇸", Unicode: "U+1F1EE U+1F1F8"},
	"IT": {Name: "Italy", Title: "flag for Italy", Emoji: "🇮🇹", Unicode: "U+1F1EE U+1F1F9"},
	"JE": {Name: "Jersey", Title: "flag for Jersey", Emoji: "🇯🇪", Unicode: "U+1F1EF U+1F1EA"},
	"JM": {Name: "Jamaica", Title: "flag for Jamaica", Emoji: "🇯🇲", Unicode: "U+1F1EF U+1F1F2"},
	"JO": {Name: "Jordan", Title: "flag for Jordan", Emoji: "🇯🇴", Unicode: "U+1F1EF U+1F1F4"},
	"JP": {Name: "Japan", Title: "flag for Japan", Emoji: "🇯🇵", Unicode: "U+1F1EF U+1F1F5"},
	"KE": {Name: "Kenya", Title: "flag for Kenya", Emoji: "🇰🇪", Unicode: "U+1F1F0 U+1F1EA"},
	"KG": {Name: "Kyrgyzstan", Title: "flag for Kyrgyzstan", Emoji: "🇰🇬", Unicode: "U+1F1F0 U+1F1EC"},
	"KH": {Name: "Cambodia", Title: "flag for Cambodia", Emoji: "🇰🇭", Unicode: "U+1F1F0 U+1F1ED"},
	"KI": {Name: "Kiribati", Title: "flag for Kiribati", Emoji: "🇰🇮", Unicode: "U+1F1F0 U+1F1EE"},
	"KM": {Name: "Comoros", Title: "flag for Comoros", Emoji: "🇰🇲", Unicode: "U+1F1F0 U+1F1F2"},
	"KN": {Name: "Saint Kitts and Nevis", Title: "flag for Saint Kitts and Nevis", Emoji: "🇰🇳", Unicode: "U+1F1F0 U+1F1F3"},
	"KP": {Name: "North Korea", Title: "flag for North Korea", Emoji: "🇰🇵", Unicode: "U+1F1F0 U+1F1F5"},
	"KR": {Name: "South Korea", Title: "flag for South Korea", Emoji: "🇰🇷", Unicode: "U+1F1F0 U+1F1F7"},
	"KW": {Name: "Kuwait", Title: "flag for Kuwait", Emoji: "🇰🇼", Unicode: "U+1F1F0 U+1F1FC"},
	"KY": {Name: "Cayman Islands", Title: "flag for Cayman Islands", Emoji: "🇰🇾", Unicode: "U+1F1F0 U+1F1FE"},
	"KZ": {Name: "Kazakhstan", Title: "flag for Kazakhstan", Emoji: "🇰🇿", Unicode: "U+1F1F0 U+1F1FF"},
	"LA": {Name: "Lao People's Democratic Republic", Title: "flag for Lao People's Democratic Republic", Emoji: "🇱🇦", Unicode: "U+1F1F1 U+1F1E6"},
	"LB": {Name: "Lebanon", Title: "flag for Lebanon", Emoji: "🇱🇧", Unicode: "U+1F1F1 U+1F1E7"},
	"LC": {Name: "Saint Lucia", Title: "flag for Saint Lucia", Emoji: "🇱🇨", Unicode: "U+1F1F1 U+1F1E8"},
	"LI": {Name: "Liechtenstein", Title: "flag for Liechtenstein", Emoji: "🇱🇮", Unicode: "U+1F1F1 U+1F1EE"},
	"LK": {Name: "Sri Lanka", Title: "flag for Sri Lanka", Emoji: "🇱🇰", Unicode: "U+1F1F1 U+1F1F0"},
	"LR": {Name: "Liberia", Title: "flag for Liberia", Emoji: "🇱🇷", Unicode: "U+1F1F1 U+1F1F7"},
	"LS": {Name: "Lesotho", Title: "flag for Lesotho", Emoji: "🇱🇸", Unicode: "U+1F1F1 U+1F1F8"},
	"LT": {Name: "Lithuania", Title: "flag for Lithuania", Emoji: "🇱🇹", Unicode: "U+1F1F1 U+1F1F9"},
	"LU": {Name: "Luxembourg", Title: "flag for Luxembourg", Emoji: "🇱🇺", Unicode: "U+1F1F1 U+1F1FA"},
	"LV": {Name: "Latvia", Title: "flag for Latvia", Emoji: "🇱🇻", Unicode: "U+1F1F1 U+1F1FB"},
	"LY": {Name: "Libya", Title: "flag for Libya", Emoji: "🇱🇾", Unicode: "U+1F1F1 U+1F1FE"},
	"MA": {Name: "Morocco", Title: "flag for Morocco", Emoji: "🇲🇦", Unicode: "U+1F1F2 U+1F1E6"},
	"MC": {Name: "Monaco", Title: "flag for Monaco", Emoji: "🇲🇨", Unicode: "U+1F1F2 U+1F1E8"},
	"MD": {Name: "Moldova", Title: "flag for Moldova", Emoji: "🇲🇩", Unicode: "U+1F1F2 U+1F1E9"},
	"ME": {Name: "Montenegro", Title: "flag for Montenegro", Emoji: "🇲🇪", Unicode: "U+1F1F2 U+1F1EA"},
	"MF": {Name: "Saint Martin (French Part)", Title: "flag for Saint Martin (French Part)", Emoji: "🇲🇫", Unicode: "U+1F1F2 U+1F1EB"},
	"MG": {Name: "Madagascar", Title: "flag for Madagascar", Emoji: "🇲🇬", Unicode: "U+1F1F2 U+1F1EC"},
	"MH": {Name: "Marshall Islands", Title: "flag for Marshall Islands", Emoji: "🇲🇭", Unicode: "U+1F1F2 U+1F1ED"},
	"MK": {Name: "Macedonia", Title: "flag for Macedonia", Emoji: "🇲🇰", Unicode: "U+1F1F2 U+1F1F0"},
	"ML": {Name: "Mali", Title: "flag for Mali", Emoji: "🇲🇱", Unicode: "U+1F1F2 U+1F1F1"},
	"MM": {Name: "Myanmar", Title: "flag for Myanmar", Emoji: "🇲🇲", Unicode: "U+1F1F2 U+1F1F2"},
	"MN": {Name: "Mongolia", Title: "flag for Mongolia", Emoji: "🇲🇳", Unicode: "U+1F1F2 U+1F1F3"},
	"MO": {Name: "Macao", Title: "flag for Macao", Emoji: "🇲🇴", Unicode: "U+1F1F2 U+1F1F4"},
	"MP": {Name: "Northern Mariana Islands", Title: "flag for Northern Mariana Islands", Emoji: "🇲🇵", Unicode: "U+1F1F2 U+1F1F5"},
	"MQ": {Name: "Martinique", Title: "flag for Martinique", Emoji: "🇲🇶", Unicode: "U+1F1F2 U+1F1F6"},
	"MR": {Name: "Mauritania", Title: "flag for Mauritania", Emoji: "🇲🇷", Unicode: "U+1F1F2 U+1F1F7"},
	"MS": {Name: "Montserrat", Title: "flag for Montserrat", Emoji: "🇲🇸", Unicode: "U+1F1F2 U+1F1F8"},
	"MT": {Name: "Malta", Title: "flag for Malta", Emoji: "🇲🇹", Unicode: "U+1F1F2 U+1F1F9"},
	"MU": {Name: "Mauritius", Title: "flag for Mauritius", Emoji: "🇲🇺", Unicode: "U+1F1F2 U+1F1FA"},
	"MV": {Name: "Maldives", Title: "flag for Maldives", Emoji: "🇲🇻", Unicode: "U+1F1F2 U+1F1FB"},
	"MW": {Name: "Malawi", Title: "flag for Malawi", Emoji: "🇲🇼", Unicode: "U+1F1F2 U+1F1FC"},
	"MX": {Name: "Mexico", Title: "flag for Mexico", Emoji: "🇲🇽", Unicode: "U+1F1F2 U+1F1FD"},
	"MY": {Name: "Malaysia", Title: "flag for Malaysia", Emoji: "🇲🇾", Unicode: "U+1F1F2 U+1F1FE"},
	"MZ": {Name: "Mozambique", Title: "flag for Mozambique", Emoji: "🇲🇿", Unicode: "U+1F1F2 U+1F1FF"},
	"NA": {Name: "Namibia", Title: "flag for Namibia", Emoji: "🇳🇦", Unicode: "U+1F1F3 U+1F1E6"},
	"NC": {Name: "New Caledonia", Title: "flag for New Caledonia", Emoji: "🇳🇨", Unicode: "U+1F1F3 U+1F1E8"},
	"NE": {Name: "Niger", Title: "flag for Niger", Emoji: "🇳🇪", Unicode: "U+1F1F3 U+1F1EA"},
	"NF": {Name: "Norfolk Island", Title: "flag for Norfolk Island", Emoji: "🇳🇫", Unicode: "U+1F1F3 U+1F1EB"},
	"NG": {Name: "Nigeria", Title: "flag for Nigeria", Emoji: "🇳🇬", Unicode: "U+1F1F3 U+1F1EC"},
	"NI": {Name: "Nicaragua", Title: "flag for Nicaragua", Emoji: "🇳🇮", Unicode: "U+1F1F3 U+1F1EE"},
	"NL": {Name: "Netherlands", Title: "flag for Netherlands", Emoji: "🇳🇱", Unicode: "U+1F1F3 U+1F1F1"},
	"NO": {Name: "Norway", Title: "flag for Norway", Emoji: "🇳🇴", Unicode: "U+1F1F3 U+1F1F4"},
	"NP": {Name: "Nepal", Title: "flag for Nepal", Emoji: "🇳🇵", Unicode: "U+1F1F3 U+1F1F5"},
	"NR": {Name: "Nauru", Title: "flag for Nauru", Emoji: "🇳🇷", Unicode: "U+1F1F3 U+1F1F7"},
	"NU": {Name: "Niue", Title: "flag for Niue", Emoji: "🇳🇺", Unicode: "U+1F1F3 U+1F1FA"},
	"NZ": {Name: "New Zealand", Title: "flag for New Zealand", Emoji: "🇳🇿", Unicode: "U+1F1F3 U+1F1FF"},
	"OM": {Name: "Oman", Title: "flag for Oman", Emoji: "🇴🇲", Unicode: "U+1F1F4 U+1F1F2"},
	"PA": {Name: "Panama", Title: "flag for Panama", Emoji: "🇵🇦", Unicode: "U+1F1F5 U+1F1E6"},
	"PE": {Name: "Peru", Title: "flag for Peru", Emoji: "🇵🇪", Unicode: "U+1F1F5 U+1F1EA"},
	"PF": {Name: "French Polynesia", Title: "flag for French Polynesia", Emoji: "🇵🇫", Unicode: "U+1F1F5 U+1F1EB"},
	"PG": {Name: "Papua New Guinea", Title: "flag for Papua New Guinea", Emoji: "🇵🇬", Unicode: "U+1F1F5 U+1F1EC"},
	"PH": {Name: "Philippines", Title: "flag for Philippines", Emoji: "🇵🇭", Unicode: "U+1F1F5 U+1F1ED"},
	"PK": {Name: "Pakistan", Title: "flag for Pakistan", Emoji: "🇵🇰", Unicode: "U+1F1F5 U+1F1F0"},
	"PL": {Name: "Poland", Title: "flag for Poland", Emoji: "🇵🇱", Unicode: "U+1F1F5 U+1F1F1"},
	"PM": {Name: "Saint Pierre and Miquelon", Title: "flag for Saint Pierre and Miquelon", Emoji: "🇵🇲", Unicode: "U+1F1F5 U+1F1F2"},
	"PN": {Name: "Pitcairn", Title: "flag for Pitcairn", Emoji: "🇵🇳", Unicode: "U+1F1F5 U+1F1F3"},
	"PR": {Name: "Puerto Rico", Title: "flag for Puerto Rico", Emoji: "🇵🇷", Unicode: "U+1F1F5 U+1F1F7"},
	"PS": {Name: "Palestinian Territory", Title: "flag for Palestinian Territory", Emoji: "🇵🇸", Unicode: "U+1F1F5 U+1F1F8"},
	"PT": {Name: "Portugal", Title: "flag for Portugal", Emoji: "🇵🇹", Unicode: "U+1F1F5 U+1F1F9"},
	"PW": {Name: "Palau", Title: "flag for Palau", Emoji: "🇵🇼", Unicode: "U+1F1F5 U+1F1FC"},
	"PY": {Name: "Paraguay", Title: "flag for Paraguay", Emoji: "🇵🇾", Unicode: "U+1F1F5 U+1F1FE"},
	"QA": {Name: "Qatar", Title: "flag for Qatar", Emoji: "🇶🇦", Unicode: "U+1F1F6 U+1F1E6"},
	"RE": {Name: "Réunion", Title: "flag for Réunion", Emoji: "🇷🇪", Unicode: "U+1F1F7 U+1F1EA"},
	"RO": {Name: "Romania", Title: "flag for Romania", Emoji: "🇷🇴", Unicode: "U+1F1F7 U+1F1F4"},
	"RS": {Name: "Serbia", Title: "flag for Serbia", Emoji: "🇷🇸", Unicode: "U+1F1F7 U+1F1F8"},
	"RU": {Name: "Russia", Title: "flag for Russia", Emoji: "🇷🇺", Unicode: "U+1F1F7 U+1F1FA"},
	"RW": {Name: "Rwanda", Title: "flag for Rwanda", Emoji: "🇷🇼", Unicode: "U+1F1F7 U+1F1FC"},
	"SA": {Name: "Saudi Arabia", Title: "flag for Saudi Arabia", Emoji: "🇸🇦", Unicode: "U+1F1F8 U+1F1E6"},
	"SB": {Name: "Solomon Islands", Title: "flag for Solomon Islands", Emoji: "🇸🇧", Unicode: "U+1F1F8 U+1F1E7"},
	"SC": {Name: "Seychelles", Title: "flag for Seychelles", Emoji: "🇸🇨", Unicode: "U+1F1F8 U+1F1E8"},
	"SD": {Name: "Sudan", Title: "flag for Sudan", Emoji: "🇸🇩", Unicode: "U+1F1F8 U+1F1E9"},
	"SE": {Name: "Sweden", Title: "flag for Sweden", Emoji: "🇸🇪", Unicode: "U+1F1F8 U+1F1EA"},
	"SG": {Name: "Singapore", Title: "flag for Singapore", Emoji: "🇸🇬", Unicode: "U+1F1F8 U+1F1EC"},
	"SH": {Name: "Saint Helena, Ascension and Tristan Da Cunha", Title: "flag for Saint Helena, Ascension and Tristan Da Cunha", Emoji: "🇸🇭", Unicode: "U+1F1F8 U+1F1ED"},
	"SI": {Name: "Slovenia", Title: "flag for Slovenia", Emoji: "🇸🇮", Unicode: "U+1F1F8 U+1F1EE"},
	"SJ": {Name: "Svalbard and Jan Mayen", Title: "flag for Svalbard and Jan Mayen", Emoji: "🇸🇯", Unicode: "U+1F1F8 U+1F1EF"},
	"SK": {Name: "Slovakia", Title: "flag for Slovakia", Emoji: "🇸🇰", Unicode: "U+1F1F8 U+1F1F0"},
	"SL": {Name: "Sierra Leone", Title: "flag for Sierra Leone", Emoji: "🇸🇱", Unicode: "U+1F1F8 U+1F1F1"},
	"SM": {Name: "San Marino", Title: "flag for San Marino", Emoji: "🇸🇲", Unicode: "U+1F1F8 U+1F1F2"},
	"SN": {Name: "Senegal", Title: "flag for Senegal", Emoji: "🇸🇳", Unicode: "U+1F1F8 U+1F1F3"},
	"SO": {Name: "Somalia", Title: "flag for Somalia", Emoji: "🇸🇴", Unicode: "U+1F1F8 U+1F1F4"},
	"SR": {Name: "Suriname", Title: "flag for Suriname", Emoji: "🇸🇷", Unicode: "U+1F1F8 U+1F1F7"},
	"SS": {Name: "South Sudan", Title: "flag for South Sudan", Emoji: "🇸🇸", Unicode: "U+1F1F8 U+1F1F8"},
	"ST": {Name: "Sao Tome and Principe", Title: "flag for Sao Tome and Principe", Emoji: "🇸🇹", Unicode: "U+1F1F8 U+1F1F9"},
	"SV": {Name: "El Salvador", Title: "flag for El Salvador", Emoji: "🇸🇻", Unicode: "U+1F1F8 U+1F1FB"},
	"SX": {Name: "Sint Maarten (Dutch Part)", Title: "flag for Sint Maarten (Dutch Part)", Emoji: "🇸🇽", Unicode: "U+1F1F8 U+1F1FD"},
	"SY": {Name: "Syrian Arab Republic", Title: "flag for Syrian Arab Republic", Emoji: "🇸🇾", Unicode: "U+1F1F8 U+1F1FE"},
	"SZ": {Name: "Swaziland", Title: "flag for Swaziland", Emoji: "🇸🇿", Unicode: "U+1F1F8 U+1F1FF"},
	"TC": {Name: "Turks and Caicos Islands", Title: "flag for Turks and Caicos Islands", Emoji: "🇹🇨", Unicode: "U+1F1F9 U+1F1E8"},
	"TD": {Name: "Chad", Title: "flag for Chad", Emoji: "🇹🇩", Unicode: "U+1F1F9 U+1F1E9"},
	"TF": {Name: "French Southern Territories", Title: "flag for French Southern Territories", Emoji: "🇹🇫", Unicode: "U+1F1F9 U+1F1EB"},
	"TG": {Name: "Togo", Title: "flag for Togo", Emoji: "🇹🇬", Unicode: "U+1F1F9 U+1F1EC"},
	"TH": {Name: "Thailand", Title: "flag for Thailand", Emoji: "🇹🇭", Unicode: "U+1F1F9 U+1F1ED"},
	"TJ": {Name: "Tajikistan", Title: "flag for Tajikistan", Emoji: "🇹🇯", Unicode: "U+1F1F9 U+1F1EF"},
	"TK": {Name: "Tokelau", Title: "flag for Tokelau", Emoji: "🇹🇰", Unicode: "U+1F1F9 U+1F1F0"},
	"TL": {Name: "Timor-Leste", Title: "flag for Timor-Leste", Emoji: "🇹🇱", Unicode: "U+1F1F9 U+1F1F1"},
	"TM": {Name: "Turkmenistan", Title: "flag for Turkmenistan", Emoji: "🇹🇲", Unicode: "U+1F1F9 U+1F1F2"},
	"TN": {Name: "Tunisia", Title: "flag for Tunisia", Emoji: "🇹🇳", Unicode: "U+1F1F9 U+1F1F3"},
	"TO": {Name: "Tonga", Title: "flag for Tonga", Emoji: "🇹🇴", Unicode: "U+1F1F9 U+1F1F4"},
	"TR": {Name: "Turkey", Title: "flag for Turkey", Emoji: "🇹🇷", Unicode: "U+1F1F9 U+1F1F7"},
	"TT": {Name: "Trinidad and Tobago", Title: "flag for Trinidad and Tobago", Emoji: "🇹🇹", Unicode: "U+1F1F9 U+1F1F9"},
	"TV": {Name: "Tuvalu", Title: "flag for Tuvalu", Emoji: "🇹🇻", Unicode: "U+1F1F9 U+1F1FB"},
	"TW": {Name: "Taiwan", Title: "flag for Taiwan", Emoji: "🇹🇼", Unicode: "U+1F1F9 U+1F1FC"},
	"TZ": {Name: "Tanzania", Title: "flag for Tanzania", Emoji: "🇹🇿", Unicode: "U+1F1F9 U+1F1FF"},
	"UA": {Name: "Ukraine", Title: "flag for Ukraine", Emoji: "🇺🇦", Unicode: "U+1F1FA U+1F1E6"},
	"UG": {Name: "Uganda", Title: "flag for Uganda", Emoji: "🇺🇬", Unicode: "U+1F1FA U+1F1EC"},
	"UM": {Name: "United States Minor Outlying Islands", Title: "flag for United States Minor Outlying Islands", Emoji: "🇺🇲", Unicode: "U+1F1FA U+1F1F2"},
	"US": {Name: "United States", Title: "flag for United States", Emoji: "🇺🇸", Unicode: "U+1F1FA U+1F1F8"},
	"UY": {Name: "Uruguay", Title: "flag for Uruguay", Emoji: "🇺🇾", Unicode: "U+1F1FA U+1F1FE"},
	"UZ": {Name: "Uzbekistan", Title: "flag for Uzbekistan", Emoji: "🇺🇿", Unicode: "U+1F1FA U+1F1FF"},
	"VA": {Name: "Vatican City", Title: "flag for Vatican City", Emoji: "🇻🇦", Unicode: "U+1F1FB U+1F1E6"},
	"VC": {Name: "Saint Vincent and The Grenadines", Title: "flag for Saint Vincent and The Grenadines", Emoji: "🇻🇨", Unicode: "U+1F1FB U+1F1E8"},
	"VE": {Name: "Venezuela", Title: "flag for Venezuela", Emoji: "🇻🇪", Unicode: "U+1F1FB U+1F1EA"},
	"VG": {Name: "Virgin Islands, British", Title: "flag for Virgin Islands, British", Emoji: "🇻🇬", Unicode: "U+1F1FB U+1F1EC"},
	"VI": {Name: "Virgin Islands, U.S.", Title: "flag for Virgin Islands, U.S.", Emoji: "🇻🇮", Unicode: "U+1F1FB U+1F1EE"},
	"VN": {Name: "Viet Nam", Title: "flag for Viet Nam", Emoji: "🇻🇳", Unicode: "U+1F1FB U+1F1F3"},
	"VU": {Name: "Vanuatu", Title: "flag for Vanuatu", Emoji: "🇻🇺", Unicode: "U+1F1FB U+1F1FA"},
	"WF": {Name: "Wallis and Futuna", Title: "flag for Wallis and Futuna", Emoji: "🇼🇫", Unicode: "U+1F1FC U+1F1EB"},
	"WS": {Name: "Samoa", Title: "flag for Samoa", Emoji: "🇼🇸", Unicode: "U+1F1FC U+1F1F8"},
	"YE": {Name: "Yemen", Title: "flag for Yemen", Emoji: "🇾🇪", Unicode: "U+1F1FE U+1F1EA"},
	"YT": {Name: "Mayotte", Title: "flag for Mayotte", Emoji: "🇾🇹", Unicode: "U+1F1FE U+1F1F9"},
	"ZA": {Name: "South Africa", Title: "flag for South Africa", Emoji: "🇿🇦", Unicode: "U+1F1FF U+1F1E6"},
	"ZM": {Name: "Zambia", Title: "flag for Zambia", Emoji: "🇿🇲", Unicode: "U+1F1FF U+1F1F2"},
	"ZW": {Name: "Zimbabwe", Title: "flag for Zimbabwe", Emoji: "🇿🇼", Unicode: "U+1F1FF U+1F1FC"},
}
