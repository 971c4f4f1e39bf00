package model

// Coefficient tables. All polynomials are in ascending degree order.
// DO NOT EDIT: values reproduce the published fit bit-for-bit.

// corelessPoly gives the radius of a CRF=0 planet as a polynomial in ln(M).
var corelessPoly = Poly{
	1.0424733556465293,
	3.113559991697741e-1,
	3.8322380977759925e-2,
	1.2703215611136627e-3,
	-3.499043718139537e-4,
	-6.811637077809525e-5,
	-5.442248192483103e-6,
	-1.6771941752060635e-7,
}

// corefullPoly gives the radius of a CRF=1 planet as a polynomial in ln(M).
var corefullPoly = Poly{
	7.714041890116314e-1,
	2.179663002059768e-1,
	2.4851443723223846e-2,
	6.91594560060839e-4,
	-2.0372392728182706e-4,
	-3.36603267896379e-5,
	-2.2709431294462362e-6,
	-5.881866013051586e-8,
}

// forwardSurface maps (CRF, log10 M) to radius.
var forwardSurface = Surface{
	// a0
	{1.04285919, -0.02281595, 0.24692514, -1.52574933, 1.43688143, -0.40660382},
	// a1
	{
		0.7172980715863525, -0.024719182117647742, 0.29220353126558546,
		-1.7038407459165059, 1.8276267952863359, -0.60684066947724757,
	},
	// a2
	{
		0.20320064867549339, -0.001194168411679495, 0.012755987597017642,
		-0.076864161485612648, -1.3463934835325109, 3.4071221416329145,
		-2.9516123779638179, 0.88476320909079476,
	},
	// a3
	{
		0.015508503902881452, -0.00033751543297382214, 0.017227789730960362,
		-0.3784861937084899, 2.6424705878154442, -13.375868926380381,
		39.83901992398571, -67.898807477736085, 66.02343215572337,
		-34.234323353588991, 7.3586169293345218,
	},
	// a4
	{
		-0.0098270586400556192, -0.0011290421327988804, 0.018847420317995751,
		-0.17549161407586755, 0.59947843282735935, -0.88699599239885818,
		0.61484443762522456, -0.16544738405664638,
	},
	// a5
	{
		-0.0044109138512083311, 0.00023752295782753652, -0.0045195837580368804,
		0.031419614235720324, -0.033669736474959695, -0.0094642012405933857,
		0.028878834664370984, -0.010645546128882312,
	},
	// a6
	{
		-0.00081113972015464219, 2.5488168497226274e-5, 0.00072694660016693461,
		0.021119477115077365, -0.15098021323361266, 0.71217205567569064,
		-2.0380509469731902, 3.4490513000309346, -3.3879401501872337,
		1.7883663418218612, -0.39256426792356286,
	},
	// a7
	{
		-5.7559003900993822e-5, 1.6532360682938199e-6, -1.6931093281375233e-6,
		0.0014697735055552036, -0.010295574934109469, 0.048466462452411284,
		-0.14287301624904816, 0.24949342651821868, -0.25133568444817084,
		0.13520827069266955, -0.030096287375531935,
	},
}

// newtonRadiusScale multiplies the observed radius in the constant term of
// the Newton numerator.
const newtonRadiusScale = 2.3317588296187997

// newtonNumerator is f(CRF) as a surface in (CRF, ln M), without the
// radius term.
var newtonNumerator = Surface{
	{
		2.4316961243316095, -0.053201292868641066, 0.5757698754498582,
		-3.5576794720124685, 3.3504609615177876, -0.9481020474417332,
	},
	{
		0.7263862330122107, -0.0250323739779068, 0.29590574791238944,
		-1.72542839595521, 1.8507828136833355, -0.6145293364100723,
	},
	{
		0.0893670336283766, -0.0005251916728619044, 0.00561004494806671,
		-0.03380462685073185, -0.5921398012465516, 1.498442062030764,
		-1.2981102391098687, 0.389116196111353,
	},
	{
		0.002962146048249629, -0.00006446592219775078, 0.0032905320584894243,
		-0.07229139509726291, 0.5047155972188316, -2.5548097695497947,
		7.60930881360172, -12.968767684526258, 12.610568361504987,
		-6.538803889232176, 1.405506178694721,
	},
	{
		-0.0008151629320623728, -0.00009365501205445961, 0.0015634096600997188,
		-0.014557179713912134, 0.049727249516946063, -0.07357707737127488,
		0.051001872777466414, -0.01372400222991872,
	},
	{
		-0.00015890360945395335, 8.556788139635795e-6, -0.00016281845363739863,
		0.0011318947225276395, -0.0012129555996131895, -0.00034094878940265256,
		0.0010403628861931627, -0.00038350685630021014,
	},
	{
		-0.000012690687977777016, 3.9877518692049377e-7, 0.000011373444364758243,
		0.00033042481789715783, -0.0023621612027589136, 0.01114228920185189,
		-0.0318863298248035, 0.05396213843367694, -0.05300602382683492,
		0.027979888877458607, -0.006141864973019203,
	},
	{
		-3.910993360147583e-7, 1.1233334226866258e-8, -1.1504263263033043e-8,
		9.986751040783711e-6, -0.00006995591041753379, 0.000329317743523268,
		-0.0009707871575669106, 0.0016952467353181114, -0.0017077644268058158,
		0.0009187070885132835, -0.0002044969025059285,
	},
}

// newtonDenominator is f′(CRF) as a surface in (CRF, ln M).
var newtonDenominator = Surface{
	{
		-0.10640258573728215, 2.3030795017994334, -21.34607683207481,
		26.8036876921423, -9.481020474417333,
	},
	{
		-0.05006474795581361, 1.1836229916495575, -10.352570375731263,
		14.806262509466686, -6.145293364100724,
	},
	{
		-0.0010503833457238087, 0.022440179792266843, -0.20282776110439113,
		-4.737118409972412, 14.984420620307638, -15.577322869318422,
		5.447626745558943,
	},
	{
		-0.00012893184439550156, 0.013162128233957697, -0.43374837058357757,
		4.037724777750653, -25.548097695497948, 91.31170576322064,
		-181.56274758336758, 201.76909378407984, -117.69847000617916,
		28.11012357389442,
	},
	{
		-0.00018731002410891923, 0.006253638640398875, -0.08734307828347279,
		0.3978179961355687, -0.7357707737127488, 0.612022473329597,
		-0.1921360312188621,
	},
	{
		0.000017113576279271593, -0.0006512738145495947, 0.006791368335165838,
		-0.009703644796905516, -0.0034094878940265257, 0.012484354634317952,
		-0.005369095988202942,
	},
	{
		7.975503738409874e-7, 0.00004549377745903297, 0.0019825489073829468,
		-0.018897289622071316, 0.11142289201851888, -0.38263595789764204,
		0.7554699380714772, -0.8480963812293592, 0.5036379997942549,
		-0.12283729946038406,
	},
	{
		2.246666845373252e-8, -4.601705305213217e-8, 0.00005992050624470227,
		-0.0005596472833402703, 0.00329317743523268, -0.011649445890802928,
		0.02373345429445356, -0.027324230828893053, 0.016536727593239105,
		-0.0040899380501185694,
	},
}
